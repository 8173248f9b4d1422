// Command changetrack-cli attaches a change tracker to a form in an HTML
// file and runs an interactive edit loop, printing the changed-field set and
// the tracking-field value after every edit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"golang.org/x/net/html"

	changetrack "github.com/goliatone/go-changetrack"
	"github.com/goliatone/go-changetrack/pkg/dom"
)

func main() {
	source := flag.String("source", "", "HTML file containing the form to track")
	config := flag.String("config", "", "optional YAML/JSON tracker options file")
	changeClass := flag.String("class", "changed", "indicator class applied to changed fields")
	flag.Parse()

	if *source == "" {
		log.Fatal("usage: changetrack-cli -source form.html [-config tracker.yaml]")
	}

	doc, form, err := loadForm(*source)
	if err != nil {
		log.Fatal(err)
	}

	binding, err := attach(doc, form, *config, *changeClass)
	if err != nil {
		log.Fatalf("attach tracker: %v", err)
	}

	fmt.Printf("tracking %d fields (binding %s)\n", len(binding.TrackedNames()), binding.ID())

	if err := editLoop(doc, binding); err != nil {
		log.Fatal(err)
	}
}

func loadForm(path string) (*dom.Document, *html.Node, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	doc, err := dom.Parse(file)
	if err != nil {
		return nil, nil, err
	}
	forms, err := doc.QueryString("form")
	if err != nil {
		return nil, nil, err
	}
	if len(forms) == 0 {
		return nil, nil, fmt.Errorf("%s contains no form element", path)
	}
	return doc, forms[0], nil
}

func attach(doc *dom.Document, form *html.Node, configPath, changeClass string) (*changetrack.Binding, error) {
	if configPath != "" {
		cfg, err := changetrack.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		return changetrack.AttachConfig(doc, form, cfg)
	}
	return changetrack.Attach(doc, form, changetrack.WithFieldChangeClass(changeClass))
}

func editLoop(doc *dom.Document, binding *changetrack.Binding) error {
	const (
		actionReset = "(reset form)"
		actionQuit  = "(quit)"
	)

	for {
		options := append(binding.TrackedNames(), actionReset, actionQuit)

		var choice string
		prompt := &survey.Select{
			Message: "Field to edit:",
			Options: options,
		}
		if err := survey.AskOne(prompt, &choice); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}

		switch choice {
		case actionQuit:
			return nil
		case actionReset:
			binding.Reset()
		default:
			if err := editField(doc, binding, choice); err != nil {
				return err
			}
		}

		printState(binding)
	}
}

func editField(doc *dom.Document, binding *changetrack.Binding, name string) error {
	baseline, _ := binding.Baseline(name)

	var value string
	prompt := &survey.Input{
		Message: fmt.Sprintf("New value for %s:", name),
		Default: binding.FieldValue(name),
		Help:    fmt.Sprintf("baseline is %q; checkable groups take comma-joined checked values", baseline),
	}
	if err := survey.AskOne(prompt, &value); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return nil
		}
		return err
	}

	applyValue(doc, binding, name, value)
	return nil
}

// applyValue writes value into the named field group and fires the change
// event the way a browser edit would.
func applyValue(doc *dom.Document, binding *changetrack.Binding, name, value string) {
	controls := namedControls(binding.Container(), name)
	if len(controls) == 0 {
		return
	}

	if checkable(controls[0]) {
		want := map[string]bool{}
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				want[part] = true
			}
		}
		for _, control := range controls {
			dom.SetChecked(control, want[dom.AttrOr(control, "value", "")])
		}
	} else {
		dom.SetControlValue(controls[0], value)
	}

	doc.Fire("change", controls[0])
}

func printState(binding *changetrack.Binding) {
	changed := binding.Changed()
	if len(changed) == 0 {
		fmt.Println("no fields changed")
	} else {
		fmt.Printf("changed: %s\n", strings.Join(changed, ", "))
	}
	if value := binding.TrackingValue(); value != "" {
		fmt.Printf("tracking field: %q\n", value)
	}
}

func namedControls(container *html.Node, name string) []*html.Node {
	var controls []*html.Node
	dom.Walk(container, func(n *html.Node) {
		if dom.IsFormControl(n) && dom.AttrOr(n, "name", "") == name {
			controls = append(controls, n)
		}
	})
	return controls
}

func checkable(n *html.Node) bool {
	switch dom.InputType(n) {
	case "checkbox", "radio":
		return true
	default:
		return false
	}
}
