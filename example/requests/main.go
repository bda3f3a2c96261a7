package main

import (
	_ "embed"
	"fmt"

	"github.com/wwqgtxx/observable"
	"github.com/wwqgtxx/observable/log"

	"github.com/gofrs/uuid/v5"
	"github.com/samber/lo"
	_ "go.uber.org/automaxprocs"
	"gopkg.in/yaml.v3"
)

//go:embed requests.yaml
var rawConfig []byte

type Request struct {
	ID     string `yaml:"-"`
	Method string `yaml:"method"`
	URL    string `yaml:"url"`
	Status int    `yaml:"status"`
	User   string `yaml:"user"`
}

type Config struct {
	LogLevel log.LogLevel `yaml:"log-level"`
	Requests []Request    `yaml:"requests"`
}

func main() {
	cfg := &Config{LogLevel: log.INFO}
	if err := yaml.Unmarshal(rawConfig, cfg); err != nil {
		log.Fatalln("parse fixtures error: %s", err.Error())
	}
	log.SetLevel(cfg.LogLevel)

	requests := lo.Map(cfg.Requests, func(req Request, _ int) Request {
		req.ID = uuid.Must(uuid.NewV4()).String()
		return req
	})

	source := observable.NewObservable(func(observer *observable.Observer[Request]) func() {
		for _, req := range requests {
			if req.Status >= 500 {
				observer.Error(fmt.Errorf("%s %s answered %d", req.Method, req.URL, req.Status))
				break
			}
			observer.Next(req)
		}
		observer.Complete() // dropped when the stream already failed
		return func() {
			log.Debugln("request source torn down")
		}
	})

	sub := source.Subscribe(observable.Handlers[Request]{
		OnNext:     handleRequest,
		OnError:    handleError,
		OnComplete: handleComplete,
	})
	// the source emits synchronously, so this is a no-op by now
	sub.Unsubscribe()

	ok := lo.CountBy(requests, func(req Request) bool { return req.Status < 400 })
	log.Infoln("loaded %d request(s), %d ok", len(requests), ok)

	users, _ := observable.Just("alice", "bob", "carol").SubscribeChan()
	for user := range users {
		log.Debugln("user seen on channel: %s", user)
	}
}

func handleRequest(req Request) {
	log.Infoln("[%s] %s %s -> %d (user %s)", req.ID[:8], req.Method, req.URL, req.Status, req.User)
}

func handleError(err error) {
	log.Errorln("request stream failed: %s", err.Error())
}

func handleComplete() {
	log.Infoln("request stream completed")
}
