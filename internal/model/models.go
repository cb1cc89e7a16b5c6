package model

// User owns a movie collection. Users are created on request and never
// updated or deleted.
type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
}

// Movie is one entry in a user's collection.
// ImageURL is nil when the source had no poster for the title.
type Movie struct {
	ID       int64   `db:"id"`
	Title    string  `db:"title"`
	Year     int     `db:"year"`
	Rating   float64 `db:"rating"`
	ImageURL *string `db:"image_url"`
	UserID   int64   `db:"user_id"`
}
