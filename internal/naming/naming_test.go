package naming

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpperFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "a", want: "A"},
		{input: "user", want: "User"},
		{input: "userID", want: "UserID"},
		{input: "User", want: "User"},
		{input: "1st", want: "1st"},
		{input: "élan", want: "Élan"},
		{input: "用户", want: "用户"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, UpperFirst(tt.input))
		})
	}
}

func TestURLToName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "/test/{id}/{num}", want: "TestIdNum"},
		{input: "/test{id}{num}", want: "Testidnum"},
		{input: "/user/login", want: "UserLogin"},
		{input: "/", want: ""},
		{input: "", want: ""},
		{input: "user", want: "User"},
		{input: "/a//b/", want: "AB"},
		{input: "/Test", want: "Test"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, URLToName(tt.input))
		})
	}
}

func TestURLToNameIdempotentOnCapitalizedSegment(t *testing.T) {
	for _, seg := range []string{"User", "Login", "A"} {
		once := URLToName("/" + seg)
		assert.Equal(t, once, URLToName("/"+once))
	}
}

func TestURLToLinkParams(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		method string
		want   string
	}{
		{name: "get uses params", path: "/record/{recordID}/{userID}", method: "GET", want: "/record/${params.recordID}/${params.userID}"},
		{name: "lowercase get", path: "/record/{recordID}", method: "get", want: "/record/${params.recordID}"},
		{name: "post uses data", path: "/record/{recordID}", method: "post", want: "/record/${data.recordID}"},
		{name: "no placeholders", path: "/user/login", method: "post", want: "/user/login"},
		{name: "embedded brace passes through", path: "/test{id}", method: "get", want: "/test{id}"},
		{name: "outer pair only", path: "/{a}x", method: "get", want: "/${params.ax}"},
		{name: "empty braces kept", path: "/{}", method: "get", want: "/{}"},
		{name: "root", path: "/", method: "get", want: ""},
		{name: "empty segments dropped", path: "//a//{b}/", method: "delete", want: "/a/${data.b}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, URLToLinkParams(tt.path, tt.method))
		})
	}
}

func TestURLToLinkParamsOnePerPlaceholderInOrder(t *testing.T) {
	interp := regexp.MustCompile(`\$\{(params|data)\.([^}]+)\}`)
	paths := []string{
		"/a/{x}",
		"/a/{x}/b/{y}/{z}",
		"/{first}/{second}",
	}
	for _, p := range paths {
		for _, m := range []string{"get", "put"} {
			got := URLToLinkParams(p, m)
			want := regexp.MustCompile(`\{([^}]+)\}`).FindAllStringSubmatch(p, -1)
			matches := interp.FindAllStringSubmatch(got, -1)
			if assert.Len(t, matches, len(want), got) {
				for i := range want {
					assert.Equal(t, ArgName(m), matches[i][1])
					assert.Equal(t, want[i][1], matches[i][2])
				}
			}
		}
	}
}

func TestArgName(t *testing.T) {
	assert.Equal(t, "params", ArgName("GET"))
	assert.Equal(t, "params", ArgName("get"))
	assert.Equal(t, "data", ArgName("post"))
	assert.Equal(t, "data", ArgName("delete"))
}

func TestFunctionName(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{method: "POST", path: "/user/login", want: "postUserLogin"},
		{method: "delete", path: "/user/logout", want: "deleteUserLogout"},
		{method: "get", path: "/user/{id}", want: "getUserId"},
		{method: "get", path: "/user-info/{id}", want: "getUserInfoId"},
		{method: "get", path: "/v1.2/items", want: "getV12Items"},
		{method: "get", path: "/", want: "get"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FunctionName(tt.method, tt.path))
		})
	}
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "fooBar", Identifier("foo-bar"))
	assert.Equal(t, "foo", Identifier("-foo"))
	assert.Equal(t, "a_b$c", Identifier("a_b$c"))
	assert.Equal(t, "", Identifier("..."))
}

func TestNameSetClaim(t *testing.T) {
	s := NameSet{}
	assert.Equal(t, "getUser", s.Claim("getUser"))
	assert.Equal(t, "getUser2", s.Claim("getUser"))
	assert.Equal(t, "getUser3", s.Claim("getUser"))
	assert.Equal(t, "postUser", s.Claim("postUser"))

	s = NameSet{}
	assert.Equal(t, "a2", s.Claim("a2"))
	assert.Equal(t, "a", s.Claim("a"))
	assert.Equal(t, "a3", s.Claim("a"))
}

func TestStripBraces(t *testing.T) {
	assert.Equal(t, "idnum", StripBraces("{id}{num}"))
	assert.Equal(t, "plain", StripBraces("plain"))
}
