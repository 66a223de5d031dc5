package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/DavidGamba/go-getoptions"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mbti-social/internal/bell"
	"mbti-social/internal/domain"
)

type commandLineOptionValues struct {
	API      string
	Realtime string
	Token    string
	User     string
	Open     bool
}

func parseCommandLine() *commandLineOptionValues {
	optionValues := &commandLineOptionValues{}
	opt := getoptions.New()

	opt.Bool("help", false, opt.Alias("h", "?"))
	opt.StringVar(&optionValues.API, "api", "http://localhost:8080",
		opt.Description("base url of the API server"))
	opt.StringVar(&optionValues.Realtime, "realtime", "ws://localhost:8080",
		opt.Description("websocket base url of the api"))
	opt.StringVar(&optionValues.Token, "token", "",
		opt.Alias("t"),
		opt.Required(),
		opt.Description("bearer token of the session"))
	opt.StringVar(&optionValues.User, "user", "",
		opt.Alias("u"),
		opt.Required(),
		opt.Description("id of the session user"))
	opt.BoolVar(&optionValues.Open, "open", false,
		opt.Description("open the bell: print the list and mark everything read"))

	_, err := opt.Parse(os.Args[1:])
	if opt.Called("help") {
		fmt.Fprint(os.Stderr, opt.Help())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err)
		fmt.Fprint(os.Stderr, opt.Help(getoptions.HelpSynopsis))
		os.Exit(1)
	}

	return optionValues
}

func main() {
	optionValues := parseCommandLine()

	log := logrus.New()
	entry := logrus.NewEntry(log).WithField("app", "bell")

	userID, err := uuid.Parse(optionValues.User)
	if err != nil {
		entry.WithError(err).Fatal("invalid user id")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state := bell.NewState()
	b := bell.New(bell.NewClient(optionValues.API, optionValues.Token), state, entry)

	if optionValues.Open {
		b.Open(ctx)
		for _, n := range state.Items() {
			printNotification(n)
		}
		return
	}

	sub := bell.NewSubscriber(optionValues.Realtime, optionValues.Token, userID, state, entry)
	sub.OnPush(func(n domain.Notification) {
		printNotification(n)
		fmt.Printf("  (%d unread)\n", state.UnreadCount())
	})

	entry.Info("listening for notifications, press Ctrl+C to exit")
	if err := sub.Run(ctx); err != nil {
		entry.WithError(err).Fatal("subscription ended")
	}
}

func printNotification(n domain.Notification) {
	marker := " "
	if !n.Read {
		marker = "*"
	}
	fmt.Printf("%s [%s] %s -> %s\n", marker, n.CreatedAt.Format("2006-01-02 15:04"), n.Message, n.Link)
}
