// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SavedAnime is a single entry of a user's saved list.
type SavedAnime struct {
	// AnimeID is the catalogue (MyAnimeList) identifier of the title.
	AnimeID string `json:"anime_id" validate:"required,max=64"`

	// Watched reports whether the user marked the title as watched.
	Watched bool `json:"watched"`

	// AddedAt is when the entry was first saved. Not sent by clients.
	AddedAt time.Time `json:"added_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the SavedAnime model.
func (s SavedAnime) TableName() string {
	return "saved_anime"
}

// Anime is a catalogue entry as returned by the MyAnimeList v2 API.
type Anime struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	MainPicture *Picture `json:"main_picture,omitempty"`
	Synopsis    string   `json:"synopsis,omitempty"`
	Mean        float64  `json:"mean,omitempty"`
	NumEpisodes int      `json:"num_episodes,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Genres      []Genre  `json:"genres,omitempty"`
	Status      string   `json:"status,omitempty"`
}

// Picture holds cover image URLs of a title.
type Picture struct {
	Medium string `json:"medium,omitempty"`
	Large  string `json:"large,omitempty"`
}

// Genre is a catalogue genre tag.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Season is a broadcast season name as understood by MyAnimeList.
type Season string

const (
	Winter Season = "winter"
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
)

// SeasonOf returns the broadcast season a month belongs to.
func SeasonOf(month time.Month) Season {
	switch month {
	case time.January, time.February, time.March:
		return Winter
	case time.April, time.May, time.June:
		return Spring
	case time.July, time.August, time.September:
		return Summer
	default:
		return Fall
	}
}

// Valid reports whether s is one of the four known seasons.
func (s Season) Valid() bool {
	switch s {
	case Winter, Spring, Summer, Fall:
		return true
	}
	return false
}
