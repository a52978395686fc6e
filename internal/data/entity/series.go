package entity

type Series struct {
	BaseSimple
	Title string    `db:"title"`
	Type  MediaType `db:"type"`
}
