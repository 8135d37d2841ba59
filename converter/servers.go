package converter

import (
	"fmt"
	"strings"

	"github.com/FreezeNow/swagger-to-axios/document"
)

// convertServers builds the servers list from host, basePath and schemes.
func (c *converter) convertServers() *document.Value {
	servers := document.Sequence()
	host, _ := c.src.StrField("host")
	basePath, _ := c.src.StrField("basePath")

	if host == "" {
		url := basePath
		if url == "" {
			url = "/"
		}
		servers.Append(server(url, "Default server"))
		c.addIssue("servers", "No host specified in OAS 2.0 document, using default server", SeverityInfo)
		return servers
	}

	schemes, _ := c.src.StringsField("schemes")
	if len(schemes) == 0 {
		schemes = []string{"https"}
	}
	if basePath == "" {
		basePath = "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		c.addIssue("basePath", fmt.Sprintf("basePath %q does not start with /", basePath), SeverityWarning)
		basePath = "/" + basePath
	}

	for _, scheme := range schemes {
		servers.Append(server(fmt.Sprintf("%s://%s%s", scheme, host, basePath),
			fmt.Sprintf("Server with %s scheme", scheme)))
	}
	return servers
}

func server(url, description string) *document.Value {
	s := document.Mapping()
	s.Set("url", document.String(url))
	s.Set("description", document.String(description))
	return s
}
