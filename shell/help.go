package shell

import (
	"embed"
	"fmt"
)

//go:embed helptext/*.txt
var helptext embed.FS

func usage() string {
	dat, err := helptext.ReadFile("helptext/usage.txt")
	if err != nil {
		return "Error loading helptext: " + err.Error()
	}
	return string(dat)
}

func usageTopic(topic string) (string, error) {
	dat, err := helptext.ReadFile("helptext/" + topic + ".txt")
	if err != nil {
		return "", fmt.Errorf("there is no help text for the topic %s", topic)
	}
	return string(dat), nil
}
