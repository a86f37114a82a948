package cli

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	pb "github.com/dmitrijs2005/keykeeper/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const timeLayout = time.RFC3339

func formatTime(t *timestamppb.Timestamp) string {
	if t == nil {
		return "-"
	}
	return t.AsTime().Format(timeLayout)
}

func (a *App) printKeys(keys []*pb.Key) {
	if len(keys) == 0 {
		fmt.Fprintln(a.out, "No keys.")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPREFIX\tSTATUS\tCREATED\tLAST USED")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			k.GetId(), k.GetDisplayName(), k.GetPrefix(), k.GetStatus(), formatTime(k.GetCreatedAt()), formatTime(k.GetLastUsedAt()))
	}
	_ = tw.Flush()
}

func (a *App) printKey(k *pb.Key) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", k.GetId())
	fmt.Fprintf(tw, "Name:\t%s\n", k.GetDisplayName())
	fmt.Fprintf(tw, "Prefix:\t%s\n", k.GetPrefix())
	fmt.Fprintf(tw, "Status:\t%s\n", k.GetStatus())
	fmt.Fprintf(tw, "Created:\t%s\n", formatTime(k.GetCreatedAt()))
	if k.GetRevokedAt() != nil {
		fmt.Fprintf(tw, "Revoked:\t%s\n", formatTime(k.GetRevokedAt()))
	}
	if k.GetLastUsedAt() != nil {
		fmt.Fprintf(tw, "Last used:\t%s\n", formatTime(k.GetLastUsedAt()))
	}
	_ = tw.Flush()
}

func (a *App) printSecret(secret string) {
	fmt.Fprintf(a.out, "\nSecret: %s\n", secret)
	fmt.Fprintln(a.out, "Store it now. It cannot be shown again.")
}

func (a *App) printEvents(events []*pb.AuditEvent) {
	if len(events) == 0 {
		fmt.Fprintln(a.out, "No events.")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tACTION\tSOURCE\tDETAILS")
	for _, e := range events {
		src := e.GetSourceAddress()
		if src == "" {
			src = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", formatTime(e.GetOccurredAt()), e.GetAction(), src, formatMetadata(e.GetMetadata()))
	}
	_ = tw.Flush()
}

func formatMetadata(m map[string]string) string {
	if len(m) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+m[k])
	}
	return strings.Join(parts, " ")
}
