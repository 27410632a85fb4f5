package service

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Behyna/cc5mock/internal/model"
	"golang.org/x/text/encoding/htmlindex"
)

var errNoRootElement = errors.New("no root element")

// decodeAuthRequest reads a CC5Request document. An empty body, or a document
// with another root element, yields an empty request.
func decodeAuthRequest(body []byte) (model.AuthRequest, error) {
	var req model.AuthRequest

	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}

	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.CharsetReader = charsetReader

	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return model.AuthRequest{}, errNoRootElement
		}
		return model.AuthRequest{}, err
	}

	// Trailing content must still be well formed.
	for {
		if _, err := dec.Token(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return model.AuthRequest{}, err
		}
	}

	if req.XMLName.Local != model.CC5RequestElement {
		return model.AuthRequest{}, nil
	}

	req.OrderID = strings.TrimSpace(req.OrderID)
	req.ClientID = strings.TrimSpace(req.ClientID)
	req.Type = strings.TrimSpace(req.Type)
	req.Total = strings.TrimSpace(req.Total)

	return req, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}
