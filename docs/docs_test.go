package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwaggerDocCoversAPI(t *testing.T) {
	var doc struct {
		BasePath    string                    `json:"basePath"`
		Paths       map[string]map[string]any `json:"paths"`
		Definitions map[string]any            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))
	require.Equal(t, "/api", doc.BasePath)
	require.NotEmpty(t, doc.Paths)

	for _, domain := range []string{
		"blog", "stories", "videos", "gallery", "team", "tenders",
		"jobs", "reports", "contacts", "volunteers", "newsletter",
	} {
		ops, ok := doc.Paths["/admin/"+domain]
		require.True(t, ok, "missing /admin/%s", domain)
		for _, method := range []string{"get", "post", "put", "delete"} {
			require.Contains(t, ops, method, "/admin/"+domain)
		}
	}
	for _, p := range []string{"/ping", "/auth/login", "/auth/me", "/blog/{slug}", "/newsletter"} {
		require.Contains(t, doc.Paths, p)
	}
	require.Contains(t, doc.Definitions, "api.ErrorResponse")
	require.Contains(t, doc.Definitions, "model.BlogPost")
}
