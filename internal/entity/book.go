package entity

// Book is one entry in the collection. The JSON tags define the backing
// file format: a top-level array of these objects.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   string `json:"year"`
	Genre  string `json:"genre"`
	Read   bool   `json:"read"`
}
