package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"droscher.com/WhiskyShelf/pkg/backup"
	"droscher.com/WhiskyShelf/pkg/model"
)

const maxJSONBody = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

type importResponse struct {
	Error   string          `json:"error,omitempty"`
	Summary *backup.Summary `json:"summary,omitempty"`
}

type brandRequest struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	Region      string `json:"region"`
	Description string `json:"description"`
}

type tastingRequest struct {
	BottleID        *uint      `json:"bottle_id"`
	BottleName      string     `json:"bottle_name"`
	BottleBrand     string     `json:"bottle_brand"`
	TastingType     string     `json:"tasting_type"`
	TastingDate     *time.Time `json:"tasting_date"`
	Location        string     `json:"location"`
	NoseRating      *int       `json:"nose_rating"`
	PalateRating    *int       `json:"palate_rating"`
	FinishRating    *int       `json:"finish_rating"`
	OverallRating   *float64   `json:"overall_rating"`
	NoseNotes       string     `json:"nose_notes"`
	PalateNotes     string     `json:"palate_notes"`
	FinishNotes     string     `json:"finish_notes"`
	Companions      string     `json:"companions"`
	AdditionalNotes string     `json:"additional_notes"`
	AmountConsumed  *int       `json:"amount_consumed"`
}

func (t tastingRequest) validate() error {
	if t.BottleID == nil && strings.TrimSpace(t.BottleName) == "" {
		return fmt.Errorf("%w: a tasting needs a bottle id or a bottle name", ErrInvalidInput)
	}

	switch model.TastingType(t.TastingType) {
	case "", model.TastingOwned, model.TastingBar, model.TastingMeeting:
	default:
		return fmt.Errorf("%w: unknown tasting type %q", ErrInvalidInput, t.TastingType)
	}

	for name, rating := range map[string]*int{"nose": t.NoseRating, "palate": t.PalateRating, "finish": t.FinishRating} {
		if rating != nil && (*rating < model.MinRating || *rating > model.MaxRating) {
			return fmt.Errorf("%w: %s rating must be between %d and %d", ErrInvalidInput, name, model.MinRating, model.MaxRating)
		}
	}

	if t.OverallRating != nil && (*t.OverallRating < model.MinRating || *t.OverallRating > model.MaxRating) {
		return fmt.Errorf("%w: overall rating must be between %d and %d", ErrInvalidInput, model.MinRating, model.MaxRating)
	}

	if t.AmountConsumed != nil && *t.AmountConsumed < 0 {
		return fmt.Errorf("%w: amount consumed cannot be negative", ErrInvalidInput)
	}

	return nil
}

func (t tastingRequest) toModel(account uint) model.Tasting {
	return model.Tasting{
		UserID:          account,
		BottleID:        t.BottleID,
		BottleName:      strings.TrimSpace(t.BottleName),
		BottleBrand:     strings.TrimSpace(t.BottleBrand),
		TastingType:     model.TastingType(t.TastingType),
		TastingDate:     t.TastingDate,
		Location:        t.Location,
		NoseRating:      t.NoseRating,
		PalateRating:    t.PalateRating,
		FinishRating:    t.FinishRating,
		OverallRating:   t.OverallRating,
		NoseNotes:       t.NoseNotes,
		PalateNotes:     t.PalateNotes,
		FinishNotes:     t.FinishNotes,
		Companions:      t.Companions,
		AdditionalNotes: t.AdditionalNotes,
		AmountConsumed:  t.AmountConsumed,
	}
}

type purchaseRequest struct {
	Price    *float64   `json:"price"`
	Location string     `json:"location"`
	Date     *time.Time `json:"date"`
	Volume   *int       `json:"volume"`
}

func decodeBody(request *http.Request, target any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, request.Body, maxJSONBody))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}

func writeJSON(writer http.ResponseWriter, status int, body any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(body)
}

func writeError(writer http.ResponseWriter, status int, err error) {
	writeJSON(writer, status, errorResponse{Error: err.Error()})
}
