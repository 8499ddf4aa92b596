package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// PathSearchResponse is the subset of the searchPubTransPathT payload the gateway reads.
// Pointers distinguish absent fields from zero values.
type PathSearchResponse struct {
	Result *PathSearchResult `json:"result"`
	Error  json.RawMessage   `json:"error,omitempty"`
}

type PathSearchResult struct {
	Path []Path `json:"path"`
}

type Path struct {
	Info *PathInfo `json:"info"`
}

type PathInfo struct {
	TotalTime *json.Number `json:"totalTime"`
}

// TotalMinutes returns totalTime as an int. Integral floats such as 287.0
// are accepted; fractional values are not.
func (i *PathInfo) TotalMinutes() (int, error) {
	if i.TotalTime == nil {
		return 0, errors.New("totalTime is missing")
	}
	if n, err := i.TotalTime.Int64(); err == nil {
		return int(n), nil
	}
	f, err := i.TotalTime.Float64()
	if err != nil {
		return 0, fmt.Errorf("totalTime %q is not a number", i.TotalTime.String())
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("totalTime %s is not an integer", i.TotalTime.String())
	}
	return int(f), nil
}

// ProviderError - application level error reported by the routing provider.
// The provider sends either {"code","msg"} or {"code","message"}.
type ProviderError struct {
	Code    json.RawMessage `json:"code,omitempty"`
	Msg     string          `json:"msg,omitempty"`
	Message string          `json:"message,omitempty"`
}

func (e ProviderError) Text() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Message
}

// HasError reports whether the payload carried an error field at all.
func (r *PathSearchResponse) HasError() bool {
	if len(r.Error) == 0 {
		return false
	}
	return strings.TrimSpace(string(r.Error)) != "null"
}

// ErrorMessage extracts the provider message from either the object or the array form.
// Unknown shapes fall back to the raw JSON text.
func (r *PathSearchResponse) ErrorMessage() string {
	var single ProviderError
	if err := json.Unmarshal(r.Error, &single); err == nil {
		if text := single.Text(); text != "" {
			return text
		}
	}

	var list []ProviderError
	if err := json.Unmarshal(r.Error, &list); err == nil {
		msgs := make([]string, 0, len(list))
		for _, e := range list {
			if text := e.Text(); text != "" {
				msgs = append(msgs, text)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}

	var plain string
	if err := json.Unmarshal(r.Error, &plain); err == nil && plain != "" {
		return plain
	}

	return string(r.Error)
}
