// Package divingfish maps the maimai DX records served by the Diving-Fish prober API.
package divingfish

type Record struct {
	Achievements float64 `json:"achievements"`
	DS           float64 `json:"ds"`
	DXScore      int     `json:"dxScore"`
	FC           string  `json:"fc"`
	FS           string  `json:"fs"`
	Level        string  `json:"level"`
	LevelIndex   int     `json:"level_index"`
	LevelLabel   string  `json:"level_label"`
	Rating       int     `json:"ra"`
	Rate         string  `json:"rate"`
	SongID       int     `json:"song_id"`
	Title        string  `json:"title"`
	Type         string  `json:"type"`
}

// Bests splits best records into the older-version pool and the current-version pool.
type Bests struct {
	Ever    []Record `json:"sd"`
	Current []Record `json:"dx"`
}

type Player struct {
	AdditionalRating int    `json:"additional_rating"`
	Charts           Bests  `json:"charts"`
	Nickname         string `json:"nickname"`
	Plate            string `json:"plate"`
	Rating           int    `json:"rating"`
	Username         string `json:"username"`
}
