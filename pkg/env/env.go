// Package env reads and maintains the bot's .env file: token lookup,
// typed value access, and patching or generating the file with
// placeholders for the fields the bot expects.
package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	// Packages
	godotenv "github.com/joho/godotenv"
	catbot "github.com/zentiph/catbot"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// ExpectedFields are the keys a complete .env file carries.
var ExpectedFields = []string{"TOKEN", "CAT_API_KEY"}

// TokenField is the key holding the bot's gateway token.
const TokenField = "TOKEN"

// placeholder marks a field that still needs a value.
const placeholder = " #! value needed !"

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Env holds the parsed key/value pairs of a .env file.
type Env map[string]string

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Load parses a .env file. The path must end in ".env" and exist;
// quoting, comments and blank lines are handled by the parser.
func Load(path string) (Env, error) {
	if !strings.HasSuffix(path, ".env") {
		return nil, catbot.ErrBadParameter.With("not a .env file: ", path)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, catbot.ErrNotFound.With(path)
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, catbot.ErrBadParameter.Withf("parsing %q: %v", path, err)
	}
	return Env(values), nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Token returns the bot token, or an error when the TOKEN field is
// absent or still a placeholder.
func (e Env) Token() (string, error) {
	token := strings.TrimSpace(e[TokenField])
	if token == "" || strings.HasPrefix(token, "#!") {
		return "", catbot.ErrNotFound.With(TokenField, " is not set")
	}
	return token, nil
}

// Missing returns the expected fields that are absent or empty, in
// declaration order.
func (e Env) Missing() []string {
	var missing []string
	for _, field := range ExpectedFields {
		if strings.TrimSpace(e[field]) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// Int returns the value for key parsed as an integer.
func (e Env) Int(key string) (int, bool) {
	v, err := strconv.Atoi(e[key])
	if err != nil {
		return 0, false
	}
	return v, true
}

// Bool returns the value for key parsed as a boolean.
func (e Env) Bool(key string) (bool, bool) {
	v, err := strconv.ParseBool(e[key])
	if err != nil {
		return false, false
	}
	return v, true
}

// Duration returns the value for key parsed as a duration.
func (e Env) Duration(key string) (time.Duration, bool) {
	v, err := time.ParseDuration(e[key])
	if err != nil {
		return 0, false
	}
	return v, true
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC FUNCTIONS

// Patch appends placeholder lines to an existing .env file for every
// expected field the parsed env is missing. Existing content is never
// rewritten.
func Patch(path string, e Env) error {
	if !strings.HasSuffix(path, ".env") {
		return catbot.ErrBadParameter.With("not a .env file: ", path)
	}
	if _, err := os.Stat(path); err != nil {
		return catbot.ErrNotFound.With(path)
	}

	missing := e.Missing()
	if len(missing) == 0 {
		return nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, field := range missing {
		if _, err := fmt.Fprintf(file, "%s=%s\n", field, placeholder); err != nil {
			return err
		}
	}
	return nil
}

// Generate creates a fresh .env skeleton with a placeholder line for
// every expected field. It fails if the file already exists.
func Generate(path string) error {
	if !strings.HasSuffix(path, ".env") {
		return catbot.ErrBadParameter.With("not a .env file: ", path)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, field := range ExpectedFields {
		if _, err := fmt.Fprintf(file, "%s=%s\n", field, placeholder); err != nil {
			return err
		}
	}
	return nil
}
