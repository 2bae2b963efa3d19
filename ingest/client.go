package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"warmsync.app/warmsync/core"
	"warmsync.app/warmsync/model"
)

// ErrBadFormat marks a payload that is neither a 2-D cell array, an array
// of keyed rows, nor an envelope with a data array. This is a hard format
// error, unlike the soft "no data" outcome downstream.
var ErrBadFormat = errors.New("unrecognized punch data shape")

// Payload is what ingestion hands to the engine: raw rows in a common
// shape plus the column mapping that produced them.
type Payload struct {
	Rows    []model.RawPunchRow `json:"rows"`
	Mapping core.ColumnMapping  `json:"mapping"`
}

// Client fetches raw punch rows from a published sheet endpoint.
type Client struct {
	transport *Transport
}

func NewClient(token string) *Client {
	return &Client{transport: NewTransport(token)}
}

// FetchRows performs the single request-response round trip and decodes
// whatever row shape the endpoint serves.
func (c *Client) FetchRows(ctx context.Context, rawURL string) (*Payload, error) {
	resp, err := c.transport.Get(ctx, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch punch data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch punch data: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read punch data: %w", err)
	}

	return DecodeRows(body)
}

// DecodeRows detects and decodes one of the three accepted payload shapes.
func DecodeRows(data []byte) (*Payload, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err == nil {
		return decodeArray(arr)
	}

	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Data != nil {
		return decodeArray(envelope.Data)
	}

	return nil, ErrBadFormat
}

func decodeArray(arr []json.RawMessage) (*Payload, error) {
	if len(arr) == 0 {
		return &Payload{}, nil
	}

	switch firstByte(arr[0]) {
	case '[':
		return decodeGrid(arr)
	case '{':
		return decodeObjects(arr)
	default:
		return nil, ErrBadFormat
	}
}

// decodeGrid handles a 2-D cell array whose first row is the header row.
func decodeGrid(arr []json.RawMessage) (*Payload, error) {
	grid := make([][]string, 0, len(arr))
	for _, raw := range arr {
		var cells []any
		if err := json.Unmarshal(raw, &cells); err != nil {
			return nil, ErrBadFormat
		}
		row := make([]string, len(cells))
		for i, c := range cells {
			row[i] = cellString(c)
		}
		grid = append(grid, row)
	}
	return FromGrid(grid), nil
}

func decodeObjects(arr []json.RawMessage) (*Payload, error) {
	keys, err := objectKeys(arr[0])
	if err != nil {
		return nil, ErrBadFormat
	}

	rows := make([]map[string]any, 0, len(arr))
	for _, raw := range arr {
		var row map[string]any
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, ErrBadFormat
		}
		rows = append(rows, row)
	}
	return mapRows(rows, keys), nil
}

// FromGrid converts header-plus-cells rows into the common payload shape.
// Blank header cells default to their spreadsheet letter so the letter
// convention in the column mapper still applies.
func FromGrid(grid [][]string) *Payload {
	if len(grid) == 0 {
		return &Payload{}
	}

	headers := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		clean := stripSpace(h)
		if clean == "" {
			clean = string(rune('A' + i))
		}
		headers[i] = clean
	}

	rows := make([]map[string]any, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		row := make(map[string]any, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				row[h] = cells[i]
			}
		}
		rows = append(rows, row)
	}
	return mapRows(rows, headers)
}

// mapRows applies the column mapping and lifts untyped cells into the
// strict raw-row shape. Numeric coercion stays soft: garbage break values
// become zero later, not errors here.
func mapRows(rows []map[string]any, keys []string) *Payload {
	mapping := core.MapColumns(keys)

	out := make([]model.RawPunchRow, 0, len(rows))
	for _, row := range rows {
		r := model.RawPunchRow{
			EmployeeName: strings.TrimSpace(cellString(row[mapping.Name])),
			Date:         cellString(row[mapping.Date]),
			StartTime:    cellString(row[mapping.Start]),
			EndTime:      cellString(row[mapping.End]),
			Notes:        cellString(row[mapping.Notes]),
		}
		if mapping.Break != "" {
			r.BreakMinutes = cellString(row[mapping.Break])
		}
		out = append(out, r)
	}
	return &Payload{Rows: out, Mapping: mapping}
}

// objectKeys reads the keys of a JSON object in document order. Decoding
// into a map would lose the order the positional fallback depends on.
func objectKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	t, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := t.(json.Delim); !ok || d != '{' {
		return nil, ErrBadFormat
	}

	var keys []string
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := kt.(string)
		if !ok {
			return nil, ErrBadFormat
		}
		keys = append(keys, key)
		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func skipValue(dec *json.Decoder) error {
	t, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := t.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	for dec.More() {
		if d == '{' {
			if _, err := dec.Token(); err != nil {
				return err
			}
		}
		if err := skipValue(dec); err != nil {
			return err
		}
	}
	_, err = dec.Token() // closing delimiter
	return err
}

func cellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		if c == float64(int64(c)) {
			return strconv.FormatInt(int64(c), 10)
		}
		return strconv.FormatFloat(c, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(c)
	default:
		return fmt.Sprint(c)
	}
}

// stripSpace removes every whitespace rune but keeps case, so a literal
// "A" header still matches the letter convention.
func stripSpace(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func firstByte(raw json.RawMessage) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
