package cmd

import (
	"fmt"
	"strings"

	"github.com/upservice/user-profile-service/pkg/env"
	"github.com/upservice/user-profile-service/pkg/http"
	pkgstrings "github.com/upservice/user-profile-service/pkg/strings"
)

type HTTPClientFactory struct {
	impl http.ClientFactory
}

func NewHTTPClientFactory(opts ...http.ClientOption) HTTPClientFactory {
	return HTTPClientFactory{
		impl: http.NewClientFactory(opts...),
	}
}

// MustInitClient resolves the destination base URL from the <DEST>_URL
// environment variable.
func (f HTTPClientFactory) MustInitClient(dest http.Destination, extraOpts ...http.ClientOption) http.Client {
	urlEnv := fmt.Sprintf("%s_URL", strings.ToUpper(pkgstrings.ToSnakeCase(string(dest))))
	baseURL := env.Must(env.Parse[string](urlEnv))

	return f.impl.InitClient(dest, baseURL, extraOpts...)
}
