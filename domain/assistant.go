// Package domain contains core concepts of the chat dashboard.
// This file defines the Assistant personas and their read-only registry.
// The registry is fixed at process start and never persisted.
package domain

import "slices"

// Assistant is a named persona used to flavor assistant replies.
// IconName and Color are presentation tags consumed by the frontend.
type Assistant struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IconName    string `json:"iconName"`
	Color       string `json:"color"`
}

// Registry is the static lookup table of available assistants.
type Registry struct {
	assistants []Assistant
}

func NewRegistry() *Registry {
	return &Registry{
		assistants: []Assistant{
			{
				ID:          1,
				Name:        "PDF Assistant",
				Description: "Analyze and extract insights from PDF documents",
				IconName:    "BeakerIcon",
				Color:       "from-purple-500 to-purple-600",
			},
			{
				ID:          2,
				Name:        "Legal Policy GPT",
				Description: "Get help with legal documents and policies",
				IconName:    "ScaleIcon",
				Color:       "from-blue-500 to-blue-600",
			},
			{
				ID:          3,
				Name:        "General Chat",
				Description: "Your all-purpose AI assistant",
				IconName:    "ChatBubbleBottomCenterTextIcon",
				Color:       "from-green-500 to-green-600",
			},
			{
				ID:          4,
				Name:        "Research Assistant",
				Description: "Help with academic research and writing",
				IconName:    "AcademicCapIcon",
				Color:       "from-red-500 to-red-600",
			},
		},
	}
}

// List returns every assistant in fixed id order.
// Callers get a copy; the registry itself is never mutated.
func (r *Registry) List() []Assistant {
	return slices.Clone(r.assistants)
}

// Get resolves an assistant by id.
func (r *Registry) Get(id int) (Assistant, bool) {
	for _, assistant := range r.assistants {
		if assistant.ID == id {
			return assistant, true
		}
	}
	return Assistant{}, false
}
