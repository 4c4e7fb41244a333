package codec

import (
	"github.com/aivanenka/studyplanner/internal/document"
	"github.com/aivanenka/studyplanner/internal/models"
)

// EncodeThesis embeds the thesis's tasks in the same document; tasks are not
// a top-level remote collection.
func EncodeThesis(t models.Thesis, tasks []models.ThesisTask) document.Document {
	return document.Document{
		"title":    document.String(t.Title),
		"articles": marshalList(t.Articles),
		"tasks":    marshalThesisTasks(tasks),
	}
}

// DecodeThesis returns the thesis and its embedded tasks, each with ThesisID
// set to the decoded id.
func DecodeThesis(key string, d document.Document) (models.Thesis, []models.ThesisTask, error) {
	id, err := parseKey(key)
	if err != nil {
		return models.Thesis{}, nil, err
	}
	title, err := requireString(d, "title")
	if err != nil {
		return models.Thesis{}, nil, err
	}
	articles, err := unmarshalList[string](d, "articles")
	if err != nil {
		return models.Thesis{}, nil, err
	}
	tasks, err := unmarshalThesisTasks(d, "tasks", id)
	if err != nil {
		return models.Thesis{}, nil, err
	}

	return models.Thesis{ID: id, Title: title, Articles: articles}, tasks, nil
}
