// Command viewer renders the persisted chat collection as a terminal table.
// It is a read-only operational tool: it never writes the chats file.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"chat-desk/domain"
	"chat-desk/repositories"
)

type Config struct {
	ChatsFile string `envconfig:"CHATS_FILE" default:"data/chats.json"`
	Colours   bool   `envconfig:"VIEWER_COLOURS" default:"true"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"ERROR"`
}

func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open the chats file read path
	repository, err := repositories.NewFileChatRepository(config.ChatsFile, logs.GetLoggerFromString(config.LogLevel))
	if err != nil {
		log.Fatalf("Failed to open chats file: %v", err)
	}

	header := fmt.Sprintf(" chat-desk viewer: %s ", config.ChatsFile)
	if config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Title", "Messages", "Updated", "Last message"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, chat := range repository.ListChats() {
		table.Append([]string{
			shortID(chat.ID),
			chat.Title,
			strconv.Itoa(len(chat.Messages)),
			chat.UpdatedAt.Format("2006-01-02 15:04"),
			lastMessagePreview(chat),
		})
	}
	table.Render()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func lastMessagePreview(chat domain.Chat) string {
	if len(chat.Messages) == 0 {
		return ""
	}
	preview := strings.ReplaceAll(chat.Messages[len(chat.Messages)-1].Content, "\n", " ")
	// Truncate on runes so multibyte content is never split mid-character.
	if runes := []rune(preview); len(runes) > 60 {
		preview = string(runes[:60]) + "..."
	}
	return preview
}
