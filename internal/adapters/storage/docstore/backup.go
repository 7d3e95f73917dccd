package docstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// Export serializes the whole store as one JSON object: keys are collection
// names, values are each collection's raw serialized string verbatim. The
// payloads are not re-parsed, so importing an export never alters data.
// POST: Every stored collection appears under its own name
func Export(ctx context.Context, s Store) ([]byte, error) {
	names, err := s.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	blob := make(map[string]string, len(names))
	for _, name := range names {
		payload, ok, err := s.GetRaw(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read collection %s: %w", name, err)
		}
		if ok {
			blob[name] = payload
		}
	}
	return json.MarshalIndent(blob, "", "  ")
}

// Import writes back every collection present in the blob, leaving others
// untouched. Payloads are written verbatim.
// PRE: data is a JSON object of collection name -> raw payload string
// POST: Collections named in the blob hold exactly the blob's payloads
func Import(ctx context.Context, s Store, data []byte) error {
	var blob map[string]string
	if err := json.Unmarshal(data, &blob); err != nil {
		return fmt.Errorf("invalid backup format: %w", err)
	}
	for name, payload := range blob {
		if err := s.SetRaw(ctx, name, payload); err != nil {
			return fmt.Errorf("failed to restore collection %s: %w", name, err)
		}
	}
	return nil
}
