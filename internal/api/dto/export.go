package dto

import "time"

type ExportKMLRequest struct {
	FileName string `json:"file_name"`
}

type ScreenshotRequest struct {
	Name      string `json:"name"`
	PNGBase64 string `json:"png_base64"`
}

type SavedFileResponse struct {
	Path string `json:"path"`
}

type MessageResponse struct {
	Level string    `json:"level"`
	Text  string    `json:"text"`
	At    time.Time `json:"at"`
}

type ListMessageResponse struct {
	Messages []MessageResponse `json:"messages"`
}
