package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmoj-submit/dmoj-submit/internal/logger"
	"go.uber.org/zap"
)

// Language is an entry of /api/v2/languages
type Language struct {
	ID           int     `json:"id"`
	Key          string  `json:"key"`
	ShortName    *string `json:"short_name"`
	CommonName   string  `json:"common_name"`
	AceModeName  string  `json:"ace_mode_name"`
	PygmentsName string  `json:"pygments_name"`
	CodeTemplate string  `json:"code_template"`
}

// Languages fetches every language the judge supports, following pagination.
func (c *Client) Languages(ctx context.Context) ([]Language, error) {
	var langs []Language
	for page := 1; ; page++ {
		var res Response[ListData[Language]]
		query := url.Values{"page": {strconv.Itoa(page)}}
		if err := c.getAPI(ctx, "/api/v2/languages", query, &res); err != nil {
			return nil, err
		}
		data, err := unwrap(&res)
		if err != nil {
			return nil, err
		}

		langs = append(langs, data.Objects...)
		logger.Debug("fetched languages page",
			zap.Int("page", page),
			zap.Int("count", len(data.Objects)),
			zap.Bool("has_more", data.HasMore))
		if !data.HasMore || len(data.Objects) == 0 {
			return langs, nil
		}
	}
}

// LanguageID resolves a language key (case-insensitive) to its submission id.
func LanguageID(langs []Language, key string) (int, error) {
	for _, lang := range langs {
		if strings.EqualFold(lang.Key, key) {
			return lang.ID, nil
		}
	}
	return 0, fmt.Errorf("%w for key %q", ErrUnknownLanguage, key)
}
