package catalog

// PlaceholderImage is used whenever the catalog returns a show without artwork.
const PlaceholderImage = "https://tinyurl.com/missing-tv"

// Show is a catalog entry as the UI consumes it.
type Show struct {
	ID      int
	Name    string
	Summary string // may contain HTML markup
	Image   string // never empty
}

// Episode is a single installment of a show.
type Episode struct {
	ID     int
	Name   string
	Season int
	Number int
}

// searchResult is one element of the search/shows response.
type searchResult struct {
	Show showPayload `json:"show"`
}

type showPayload struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Summary string        `json:"summary"`
	Image   *imagePayload `json:"image"`
}

type imagePayload struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

type episodePayload struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season int    `json:"season"`
	Number int    `json:"number"`
}

// toShow applies the image fallback; everything else passes through.
func (p showPayload) toShow() Show {
	image := PlaceholderImage
	if p.Image != nil && p.Image.Medium != "" {
		image = p.Image.Medium
	}
	return Show{
		ID:      p.ID,
		Name:    p.Name,
		Summary: p.Summary,
		Image:   image,
	}
}

func (p episodePayload) toEpisode() Episode {
	return Episode{
		ID:     p.ID,
		Name:   p.Name,
		Season: p.Season,
		Number: p.Number,
	}
}
