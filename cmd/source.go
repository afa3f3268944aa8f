package cmd

import (
	"net/http"

	"github.com/brogergvhs/se8/internal/config"
	"github.com/brogergvhs/se8/internal/providers/se8"
	"github.com/brogergvhs/se8/internal/ui"
	"github.com/brogergvhs/se8/internal/util"
)

// session bundles what every site command needs.
type session struct {
	cfg      *config.Config
	usedPath string
	log      *ui.Logger
	source   *se8.Source
	client   *http.Client
}

func openSession(opts config.Options) (*session, error) {
	opts.IgnoreConfig = flagIgnoreConfig
	opts.Debug = flagDebug
	opts.BaseURL = flagBaseURL
	opts.CloudflareBypass = flagCloudflare
	opts.Cookie = flagCookie
	opts.CookieFile = flagCookieFile
	opts.UserAgent = flagUserAgent

	cfg, usedPath, err := config.LoadMerged(opts)
	if err != nil {
		return nil, err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	logSvc.Debugf("Config: %s\n", usedPath)

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          cfg.Timeout,
		UserAgent:        util.PickUserAgent(cfg.UserAgent),
		Referer:          cfg.BaseURL + "/",
		Cookie:           cfg.Cookie,
		CookieFile:       cfg.CookieFile,
		CloudflareBypass: cfg.CloudflareBypass,
		DebugLogger:      logSvc,
	})
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      cfg,
		usedPath: usedPath,
		log:      logSvc,
		source:   se8.NewSource(client, cfg.BaseURL, logSvc),
		client:   client,
	}, nil
}
