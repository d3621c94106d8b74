package models

import "time"

type Note struct {
	ID        int64     `json:"id"`
	DeviceID  int64     `json:"device_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateNoteRequest struct {
	Text string `json:"text" validate:"required,max=4000,notetext"`
}

type UpdateNoteRequest struct {
	Text string `json:"text" validate:"required,max=4000,notetext"`
}
