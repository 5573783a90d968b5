package fragment

import (
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"time"

	"giftmarket-backend/lib/restyutil"
	"giftmarket-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/fragment")

const DefaultBaseUrl = "https://fragment.com"

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	// when set, every exchange the client makes is dumped here
	DebugOutput restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) (*Client, error) {
	rawUrl := opts.BaseUrl
	if rawUrl == "" {
		rawUrl = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(rawUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(rawUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/fragment/http")
	restyutil.InstrumentClient(client, opts.DebugOutput)

	c := &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}
	return c, nil
}

// GiftRef builds the (id, type, url) key for a gift without a catalog
// fetch, for callers that already know which gift they want.
func (c *Client) GiftRef(giftType string, id int64) Gift {
	ref, _ := url.Parse(fmt.Sprintf("/gifts/%s-%d", giftType, id))
	return Gift{
		Id:   id,
		Type: giftType,
		Url:  c.BaseUrl.ResolveReference(ref).String(),
	}
}
