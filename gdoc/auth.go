package gdoc

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
)

// Scopes requested for document publishing. drive.file limits access to
// files this app created.
var scopes = []string{
	drive.DriveFileScope,
	docs.DocumentsScope,
}

// Authorize returns an authenticated token source, running the installed-app
// OAuth flow when no cached token exists. credentialsFile is the OAuth
// client secret downloaded from the Google Cloud console; tokenFile caches
// the resulting user token between runs.
func Authorize(ctx context.Context, credentialsFile, tokenFile string) (oauth2.TokenSource, error) {
	secret, err := os.ReadFile(credentialsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf(
				"missing %s; follow the Drive/Docs quickstart to download it", credentialsFile)
		}
		return nil, errors.Wrap(err, "read credentials")
	}

	conf, err := google.ConfigFromJSON(secret, scopes...)
	if err != nil {
		return nil, errors.Wrap(err, "parse credentials")
	}

	token, err := tokenFromFile(tokenFile)
	if err != nil {
		token, err = tokenFromPrompt(ctx, conf)
		if err != nil {
			return nil, err
		}
		if err := saveToken(tokenFile, token); err != nil {
			return nil, err
		}
	}

	// TokenSource refreshes expired tokens transparently on use.
	return conf.TokenSource(ctx, token), nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, err
	}
	return token, nil
}

// tokenFromPrompt runs the out-of-band console flow: print the consent URL,
// read the authorization code from stdin, exchange it for a token.
func tokenFromPrompt(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	url := conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open this link in your browser, then paste the authorization code:\n%s\n> ", url)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, errors.Wrap(err, "read authorization code")
	}

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "exchange authorization code")
	}
	return token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrap(err, "cache token")
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}
