package model

type ShapeRequestBody struct {
	Root    NoteId       `json:"root"`
	Quality ChordQuality `json:"quality"`
}

type TriadRequestBody struct {
	Root    NoteId       `json:"root"`
	Quality ChordQuality `json:"quality"`
}

type RiffRequestBody struct {
	Progression string    `json:"progression"`
	Root        NoteId    `json:"root"`
	Style       RiffStyle `json:"style"`
	Bpm         int       `json:"bpm"`
}

type RiffResponse struct {
	Id   string          `json:"id"`
	Riff ProgressionRiff `json:"riff"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
