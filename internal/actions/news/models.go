// internal/actions/news/models.go
package news

type apiResponse struct {
	Articles []Article `json:"articles"`
}

type Article struct {
	Title *string `json:"title"`
}

const responseSchema = `{
  "type": "object",
  "required": ["articles"],
  "properties": {
    "articles": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title"],
        "properties": {"title": {"type": ["string", "null"]}}
      }
    }
  }
}`
