package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/llehouerou/mpdwaves/internal/daemon"
	"github.com/llehouerou/mpdwaves/internal/errmsg"
	"github.com/llehouerou/mpdwaves/internal/mirror"
	"github.com/llehouerou/mpdwaves/internal/ui/render"
)

func newStatusCmd(configFile *string) *cobra.Command {
	var showPlaylists bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the player state and queue, then exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, *configFile)
			if err != nil {
				return err
			}
			client, err := daemon.Dial(cmd.Context(), cfg.DaemonOptions())
			if err != nil {
				return errmsg.Wrap(errmsg.OpConnect, err)
			}
			defer client.Close()

			m, err := mirror.New(client, quietLogger())
			if err != nil {
				return err
			}
			snap := m.Snapshot()
			renderStatus(cmd.OutOrStdout(), snap)
			if showPlaylists {
				renderPlaylists(cmd.OutOrStdout(), snap.Playlists, time.Now())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&showPlaylists, "playlists", "p", false, "also list stored playlists")
	return cmd
}

// renderStatus prints a one-line summary followed by the queue table.
func renderStatus(w io.Writer, snap mirror.Snapshot) {
	fmt.Fprintln(w, statusLine(snap))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"", "#", "Artist", "Title", "Album", "Time"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, WidthMax: 24},
		{Number: 4, WidthMax: 40},
		{Number: 5, WidthMax: 30},
		{Number: 6, Align: text.AlignRight},
	})

	playing, hasPlaying := snap.PlayingIndex()
	for i, tr := range snap.Queue {
		marker := ""
		if hasPlaying && i == playing {
			marker = ">"
		}
		title := tr.Title
		if title == "" {
			title = tr.File
		}
		t.AppendRow(table.Row{
			marker,
			i + 1,
			render.Sanitize(tr.Tag("Artist")),
			render.Sanitize(title),
			render.Sanitize(tr.Tag("Album")),
			render.Clock(int(tr.Duration.Seconds())),
		})
	}
	if len(snap.Queue) == 0 {
		t.AppendRow(table.Row{"", "", "", "queue is empty", "", ""})
	}
	t.Render()
}

func statusLine(snap mirror.Snapshot) string {
	st := snap.Status
	parts := []string{string(st.State)}

	if snap.Current != nil {
		label := snap.Current.Title
		if artist := snap.Current.Tag("Artist"); artist != "" && label != "" {
			label = artist + " - " + label
		}
		if label == "" {
			label = snap.Current.File
		}
		parts = append(parts, render.Sanitize(label))
	}
	if st.HasTime {
		parts = append(parts, render.Clock(int(st.Elapsed.Seconds()))+" / "+render.Clock(snap.Duration))
	}
	if st.HasMixer() {
		parts = append(parts, fmt.Sprintf("volume %d%%", st.Volume))
	} else {
		parts = append(parts, "volume n/a")
	}

	modes := lo.Compact([]string{
		lo.Ternary(st.Repeat, "repeat", ""),
		lo.Ternary(st.Random, "random", ""),
		lo.Ternary(st.Single, "single", ""),
		lo.Ternary(st.Consume, "consume", ""),
	})
	if len(modes) > 0 {
		parts = append(parts, strings.Join(modes, ","))
	}
	return strings.Join(parts, " | ")
}

func renderPlaylists(w io.Writer, playlists []daemon.Playlist, now time.Time) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Playlist", "Modified"})
	for _, p := range playlists {
		modified := "-"
		if !p.LastModified.IsZero() {
			modified = humanize.RelTime(p.LastModified, now, "ago", "from now")
		}
		t.AppendRow(table.Row{render.Sanitize(p.Name), modified})
	}
	t.Render()
}
