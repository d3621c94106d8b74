package services

import "digital-weather/models"

// NoteService handles business logic for device notes
type NoteService struct {
	repo NoteRepository
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// Add attaches a note to a device; created_at is set by the store
func (ns *NoteService) Add(deviceID int64, text string) (*models.Note, error) {
	note := &models.Note{
		DeviceID: deviceID,
		Text:     text,
	}

	if err := ns.repo.CreateNote(note); err != nil {
		return nil, err
	}

	return note, nil
}

// List returns the notes of a device, newest first
func (ns *NoteService) List(deviceID int64) ([]models.Note, error) {
	return ns.repo.ListNotesByDevice(deviceID)
}

// Update replaces a note's text; false means no such note
func (ns *NoteService) Update(noteID int64, text string) (bool, error) {
	return ns.repo.UpdateNote(noteID, text)
}

// Delete removes a note; false means no such note
func (ns *NoteService) Delete(noteID int64) (bool, error) {
	return ns.repo.DeleteNote(noteID)
}
