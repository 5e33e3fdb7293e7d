// Package knowledge defines the KnowledgeUnit entity, the unit of content
// the service stores, caches, and relates through the link graph.
package knowledge

import (
	"time"

	"github.com/google/uuid"

	apperrors "knowcore/pkg/errors"
)

// ModerationStatus represents the moderation state of a knowledge unit.
type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusRejected ModerationStatus = "rejected"
)

// Unit is a single knowledge unit: authored content plus the scene and asset
// references that accompany it.
type Unit struct {
	ID               string           `json:"id"`
	AuthorID         string           `json:"author_id"`
	ContentText      string           `json:"content_text"`
	SceneURL         string           `json:"scene_url,omitempty"`
	AssetURLs        []string         `json:"asset_urls,omitempty"`
	Tags             []string         `json:"tags"`
	PovScore         float64          `json:"pov_score"`
	ModerationStatus ModerationStatus `json:"moderation_status"`
	VersionHistory   []string         `json:"version_history,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// NewUnit creates a knowledge unit with a generated ID and pending
// moderation status.
func NewUnit(authorID, contentText string, tags []string) (*Unit, error) {
	if authorID == "" {
		return nil, apperrors.Validation("author id cannot be empty")
	}
	if contentText == "" {
		return nil, apperrors.Validation("content text cannot be empty")
	}
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	return &Unit{
		ID:               uuid.New().String(),
		AuthorID:         authorID,
		ContentText:      contentText,
		Tags:             tags,
		ModerationStatus: StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Clone returns a deep copy of the unit, so callers holding the copy can
// never mutate stored state.
func (u *Unit) Clone() *Unit {
	clone := *u
	clone.AssetURLs = append([]string(nil), u.AssetURLs...)
	clone.Tags = append([]string(nil), u.Tags...)
	clone.VersionHistory = append([]string(nil), u.VersionHistory...)
	return &clone
}
