// Command browserbridge drives a browser session from the terminal.
package main

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"

	"github.com/Nikita55612/BrowserBridge/browser"
	. "github.com/Nikita55612/BrowserBridge/internal/logging"
)

const version = "0.2.0"

var cli struct {
	Debug      bool   `help:"Enable debug logging."`
	Executable string `help:"Browser executable override." type:"path"`
	Headless   bool   `help:"Run the browser headless (new mode)."`
	Sandbox    bool   `help:"Enable the Chromium sandbox."`

	MyIP      myIPCmd      `cmd:"" name:"myip" help:"Report the session's external IP."`
	Open      openCmd      `cmd:"" help:"Open a URL and print the page title."`
	UserAgent userAgentCmd `cmd:"" name:"user-agent" help:"Print random entries from the rotation table."`
	ClearData clearDataCmd `cmd:"" name:"clear-data" help:"Launch, clear session data, exit."`
	Version   versionCmd   `cmd:"" help:"Print the version."`
}

func launchSession() (*browser.Session, error) {
	cfg := browser.DefaultSessionConfig()
	cfg.Executable = cli.Executable
	cfg.Sandbox = cli.Sandbox
	if cli.Headless {
		cfg.Headless = browser.HeadlessNew
	}
	return browser.Launch(cfg)
}

type myIPCmd struct{}

func (c *myIPCmd) Run() error {
	s, err := launchSession()
	if err != nil {
		return err
	}
	defer s.Close()

	ip, err := s.MyIP()
	if err != nil {
		return err
	}
	fmt.Printf("%s %s (%s)\n", ip.IP, ip.Country, ip.CountryCode)
	return nil
}

type openCmd struct {
	URL         string        `arg:"" help:"Target URL."`
	Proxy       string        `help:"Proxy address to switch to before opening."`
	UserAgent   string        `help:"User agent override; 'random' samples the rotation table."`
	Stealth     bool          `help:"Apply the stealth posture."`
	Settle      time.Duration `default:"0s" help:"Settle after navigation."`
	WaitFor     string        `help:"Selector to poll for after opening."`
	WaitTimeout time.Duration `default:"3s" help:"Budget for --wait-for."`
}

func (c *openCmd) Run() error {
	s, err := launchSession()
	if err != nil {
		return err
	}
	defer s.Close()

	params := browser.PageParams{
		Proxy:     c.Proxy,
		UserAgent: c.UserAgent,
		Stealth:   c.Stealth,
		Settle:    c.Settle,
	}
	if c.UserAgent == "random" {
		params.UserAgent = browser.RandomUserAgent()
	}
	if c.WaitFor != "" {
		params.WaitFor = &browser.ElementWait{Selector: c.WaitFor, Timeout: c.WaitTimeout}
	}

	page, err := s.OpenWithParams(c.URL, params)
	if err != nil {
		return err
	}
	info, err := page.Info()
	if err != nil {
		return err
	}
	fmt.Printf("%s\n%s\n", info.Title, info.URL)
	return nil
}

type userAgentCmd struct {
	N int `default:"1" help:"How many to print."`
}

func (c *userAgentCmd) Run() error {
	for i := 0; i < c.N; i++ {
		fmt.Println(browser.RandomUserAgent())
	}
	return nil
}

type clearDataCmd struct{}

func (c *clearDataCmd) Run() error {
	s, err := launchSession()
	if err != nil {
		return err
	}
	defer s.Close()
	return s.ClearData()
}

type versionCmd struct{}

func (c *versionCmd) Run() error {
	fmt.Printf("browserbridge %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("browserbridge"),
		kong.Description("Headless browser session driver."),
		kong.UsageOnError(),
	)

	level := LevelInfo
	if cli.Debug {
		level = LevelDebug
	}
	Init(&Config{Level: level, ShowCaller: cli.Debug})

	ctx.FatalIfErrorf(ctx.Run())
}
