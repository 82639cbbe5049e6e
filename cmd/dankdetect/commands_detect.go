package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AvengeMedia/dankdetect/internal/log"
	"github.com/AvengeMedia/dankdetect/pkg/desktop"
	"github.com/AvengeMedia/dankdetect/pkg/session"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("120"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

type detectResult struct {
	Desktop  string `json:"desktop,omitempty"`
	Detected bool   `json:"detected"`
	GTK      bool   `json:"gtk"`
	Qt       bool   `json:"qt"`
	Session  string `json:"session,omitempty"`
	WSL      bool   `json:"wsl"`
}

func runDetect(cmd *cobra.Command, args []string) {
	debug, _ := cmd.Flags().GetBool("debug")
	log.SetDebug(debug)

	de, ok := desktop.Detect()
	if ok {
		log.Debugf("classified desktop environment: %s", de)
	} else {
		log.Debug("no desktop environment classification")
	}

	sess := session.Detect()
	result := detectResult{
		Detected: ok,
		Session:  string(sess),
		WSL:      session.IsWSL(),
	}
	if ok {
		result.Desktop = de.String()
		result.GTK = de.GTK()
		result.Qt = de.Qt()
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatalf("encoding result: %v", err)
		}
		return
	}

	printDetectResult(result)
}

func printDetectResult(r detectResult) {
	if r.Detected {
		line := labelStyle.Render("Desktop: ") + valueStyle.Render(r.Desktop)
		if family := familyName(r.GTK, r.Qt); family != "" {
			line += dimStyle.Render(" (" + family + ")")
		}
		fmt.Println(line)
	} else {
		fmt.Println(labelStyle.Render("Desktop: ") + dimStyle.Render("could not determine"))
	}

	if r.Session != "" {
		fmt.Println(labelStyle.Render("Session: ") + valueStyle.Render(r.Session))
	}
	if r.WSL {
		fmt.Println(dimStyle.Render("Running inside WSL"))
	}
}

func familyName(gtk, qt bool) string {
	switch {
	case gtk:
		return "GTK"
	case qt:
		return "Qt"
	}
	return ""
}
