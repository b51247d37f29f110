package model

// RequirementUnit is one independently checkable clause of a regulatory
// document. Units are immutable once produced by segmentation.
type RequirementUnit struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Category  Category `json:"category"`
	ArticleID string   `json:"article_id"`
}
