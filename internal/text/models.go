package text

// Page is one block of journal site copy, keyed on a page key such as
// "HomePage" or "SubmissionsPage".
type Page struct {
	Key   string `json:"key" bson:"_id"`
	Title string `json:"title" bson:"title"`
	Text  string `json:"text" bson:"text"`
}
