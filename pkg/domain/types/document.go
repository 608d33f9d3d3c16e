package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

const maxDocumentIDBytes = 1500

func validateDocumentID(id, kind string) error {
	switch {
	case id == "":
		return goerr.New("empty "+kind, goerr.V("kind", kind))
	case len(id) > maxDocumentIDBytes:
		return goerr.New(kind+" is too long", goerr.V("length", len(id)))
	case id == "." || id == "..":
		return goerr.New("invalid "+kind, goerr.V("id", id))
	case strings.Contains(id, "/"):
		return goerr.New(kind+" must not contain '/'", goerr.V("id", id))
	case strings.HasPrefix(id, "__") && strings.HasSuffix(id, "__"):
		return goerr.New("reserved "+kind, goerr.V("id", id))
	}
	return nil
}
