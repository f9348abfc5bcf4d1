package cli

import (
	stderrors "errors"

	"github.com/enemdev/cli/internal/enem"
	"github.com/enemdev/cli/internal/errors"
	"github.com/spf13/viper"
)

// newClient builds the API client from the resolved configuration.
func newClient() *enem.Client {
	return enem.New(viper.GetString("base_url"))
}

// translateAPIError maps client failures onto CLI error codes so the process
// exit status tells API rejections apart from transport problems.
func translateAPIError(err error) error {
	var statusErr *enem.StatusError
	if stderrors.As(err, &statusErr) {
		return errors.NewHTTPError(statusErr.Error(), nil)
	}
	var transportErr *enem.TransportError
	if stderrors.As(err, &transportErr) {
		return errors.NewNetworkError("network error", transportErr)
	}
	return errors.NewGenericError("request failed", err)
}
