package restyutil

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

// InstrumentOutput receives a formatted request/response exchange per
// request made by an instrumented client.
type InstrumentOutput interface {
	Write(id string, contents string)
}

// FilesystemOutput writes each exchange to its own file in a directory,
// wiping whatever the directory held on creation.
type FilesystemOutput struct {
	directory string
}

func NewFilesystemOutput(dir string) FilesystemOutput {
	os.RemoveAll(dir)
	err := os.MkdirAll(dir, 0777)
	if err != nil {
		panic(err)
	}
	return FilesystemOutput{directory: dir}
}

func (o FilesystemOutput) Write(id string, contents string) {
	err := os.WriteFile(filepath.Join(o.directory, id), []byte(contents), 0600)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to write exchange file:", err)
	}
}

func formatHeaders(headers http.Header) string {
	var out strings.Builder
	for k, vals := range headers {
		for _, v := range vals {
			out.WriteString(fmt.Sprintf("%s: %s\n", k, v))
		}
	}
	return out.String()
}

// 1: request method
// 2: request url
// 3: request headers
// 4: response status
// 5: response headers
// 6: response body
const exchangeTemplate = `---- REQUEST ----

%s %s

%s
---- RESPONSE ----

%s

%s
%s
`

// InstrumentClient dumps every exchange the client makes to the output.
// A nil output makes this a no-op.
func InstrumentClient(client *resty.Client, output InstrumentOutput) {
	if output == nil {
		return
	}

	var idcounter uint64
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		id := strconv.FormatUint(atomic.AddUint64(&idcounter, 1), 10)
		output.Write(id, fmt.Sprintf(
			exchangeTemplate,
			res.Request.Method,
			res.Request.URL,
			formatHeaders(res.Request.Header),
			res.Status(),
			formatHeaders(res.Header()),
			res.String(),
		))
		return nil
	})
}
