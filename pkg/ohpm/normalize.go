package ohpm

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrEmptyName indicates a raw record with no usable package name.
var ErrEmptyName = errors.New("record has empty name")

// StringList decodes a JSON value that is either an array of strings
// or a single string. The registry is inconsistent about the keywords
// field, so both shapes must be accepted.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*s = nil
		} else {
			*s = []string{single}
		}
		return nil
	}

	return fmt.Errorf("keywords: expected string or string array, got %s", data)
}

// rawRecord mirrors one row of the registry search response.
// Missing fields decode to zero values per the silent-default policy.
type rawRecord struct {
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Org               string     `json:"org"`
	PackageType       string     `json:"packageType"`
	LatestVersion     string     `json:"latestVersion"`
	LatestPublishTime int64      `json:"latestPublishTime"`
	License           string     `json:"license"`
	AuthorName        string     `json:"authorName"`
	PublisherID       string     `json:"publisherId"`
	PublisherName     string     `json:"publisherName"`
	AuthorPicURL      string     `json:"authorPicUrl"`
	Likes             int        `json:"likes"`
	Points            int        `json:"points"`
	Popularity        int        `json:"popularity"`
	Keywords          StringList `json:"keywords"`
}

// Normalize converts a raw registry row into a Package.
// It returns an error for rows that cannot be decoded or that lack a
// name; callers drop such rows without aborting the crawl.
func Normalize(raw json.RawMessage) (Package, error) {
	var rec rawRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Package{}, fmt.Errorf("decode record: %w", err)
	}

	if rec.Name == "" {
		return Package{}, ErrEmptyName
	}

	return Package{
		Name:              rec.Name,
		Description:       rec.Description,
		Org:               rec.Org,
		PackageType:       rec.PackageType,
		LatestVersion:     rec.LatestVersion,
		LatestPublishTime: rec.LatestPublishTime,
		License:           rec.License,
		AuthorName:        rec.AuthorName,
		PublisherID:       rec.PublisherID,
		PublisherName:     rec.PublisherName,
		AuthorPicURL:      rec.AuthorPicURL,
		Likes:             rec.Likes,
		Points:            rec.Points,
		Popularity:        rec.Popularity,
		Keywords:          rec.Keywords,
	}, nil
}

// NormalizeAll normalizes a batch of raw rows in order, dropping
// invalid rows with a warning. It returns the surviving packages and
// the number of dropped rows.
func NormalizeAll(rows []json.RawMessage, logger zerolog.Logger) ([]Package, int) {
	pkgs := make([]Package, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		pkg, err := Normalize(row)
		if err != nil {
			dropped++
			logger.Warn().Err(err).Msg("Dropping malformed record")
			continue
		}
		pkgs = append(pkgs, pkg)
	}

	return pkgs, dropped
}
