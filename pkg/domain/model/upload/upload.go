package upload

import (
	"path"
	"strings"
	"time"

	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// URLTTL is the lifetime of a signed source upload URL.
const URLTTL = 15 * time.Minute

const maxFileNameLength = 255

// SignedURL is a time-limited URL granting direct access to one storage object.
type SignedURL struct {
	URL       string    `json:"url"`
	Object    string    `json:"object"`
	Method    string    `json:"method"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SignOptions describes the access a signed URL grants.
type SignOptions struct {
	Method      string
	ContentType string
	Expires     time.Time
}

// SourceObject returns the object name for a bot source file. A random prefix keeps
// uploads of the same file name from overwriting each other.
func SourceObject(teamID types.TeamID, botID types.BotID, fileName string) (string, error) {
	name, err := sanitizeFileName(fileName)
	if err != nil {
		return "", err
	}
	return path.Join("teams", teamID.String(), "bots", botID.String(), "sources",
		uuid.NewString()+"-"+name), nil
}

func sanitizeFileName(fileName string) (string, error) {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "" || name == "." || name == "/" || name == ".." {
		return "", goerr.New("invalid file name",
			goerr.T(errs.TagInvalidRequest),
			goerr.V("file_name", fileName))
	}
	if len(name) > maxFileNameLength {
		return "", goerr.New("file name is too long",
			goerr.T(errs.TagInvalidRequest),
			goerr.V("max", maxFileNameLength))
	}
	return name, nil
}
