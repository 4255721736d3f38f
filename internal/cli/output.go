package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/nodesort/internal/domain"
)

// formatLinks prints only the raw links, in order; it is what gets written back.
const formatLinks = "links"

type itemView struct {
	ID     int         `json:"id" yaml:"id"`
	Link   string      `json:"link" yaml:"link"`
	Status string      `json:"status" yaml:"status"`
	Remark string      `json:"remark,omitempty" yaml:"remark,omitempty"`
	Parsed *parsedView `json:"parsed,omitempty" yaml:"parsed,omitempty"`
	Error  *errorView  `json:"error,omitempty" yaml:"error,omitempty"`
}

type parsedView struct {
	Country string  `json:"country" yaml:"country"`
	Region  string  `json:"region" yaml:"region"`
	Tier    int     `json:"tier" yaml:"tier"`
	SID     *string `json:"sid" yaml:"sid"`
	SN      *int    `json:"sn" yaml:"sn"`
	Flag    *string `json:"flag" yaml:"flag"`
}

type errorView struct {
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

type listView struct {
	Summary summaryView `json:"summary" yaml:"summary"`
	Items   []itemView  `json:"items" yaml:"items"`
}

type summaryView struct {
	Total   int `json:"total" yaml:"total"`
	Ruled   int `json:"ruled" yaml:"ruled"`
	Unruled int `json:"unruled" yaml:"unruled"`
	Invalid int `json:"invalid" yaml:"invalid"`
}

func toListView(list domain.NodeList) listView {
	out := listView{
		Summary: summaryView{
			Total:   list.Summary.Total(),
			Ruled:   list.Summary.Ruled,
			Unruled: list.Summary.Unruled,
			Invalid: list.Summary.Invalid,
		},
		Items: make([]itemView, 0, len(list.Items)),
	}
	for _, it := range list.Items {
		out.Items = append(out.Items, toItemView(it))
	}
	return out
}

func toItemView(it domain.ClassifiedItem) itemView {
	v := itemView{
		ID:     it.ID,
		Link:   it.OriginalLink,
		Status: string(it.Status()),
	}
	if r, ok := it.Remark(); ok {
		v.Remark = r
	}
	if p, ok := it.Parsed(); ok {
		v.Parsed = &parsedView{
			Country: p.Country,
			Region:  p.Region,
			Tier:    p.Tier,
			SID:     p.SID,
			SN:      p.SN,
			Flag:    p.Flag,
		}
	}
	if e, ok := it.Err(); ok {
		v.Error = &errorView{Kind: string(e.Kind), Message: e.Message()}
	}
	return v
}

func printList(w io.Writer, list domain.NodeList, format string, previewLen int) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case string(domain.OutputJSON):
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toListView(list))
	case string(domain.OutputYAML):
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toListView(list)); err != nil {
			return err
		}
		return enc.Close()
	case string(domain.OutputPretty), "":
		printPrettyList(w, list, previewLen)
		return nil
	case formatLinks:
		if len(list.Items) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, list.Text())
		return err
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|yaml|links)", format)
	}
}

func printPrettyList(w io.Writer, list domain.NodeList, previewLen int) {
	s := list.Summary
	fmt.Fprintf(w, "Nodes: %d (ruled %d, unruled %d, invalid %d)\n", s.Total(), s.Ruled, s.Unruled, s.Invalid)
	if len(list.Items) == 0 {
		return
	}
	fmt.Fprintln(w)

	for i, it := range list.Items {
		fmt.Fprintf(w, "%3d. %s\n", i+1, describeItem(it, previewLen))
	}
}

// describeItem renders one item the way the list view shows it.
func describeItem(it domain.ClassifiedItem, previewLen int) string {
	switch c := it.Class.(type) {
	case domain.Ruled:
		return "[ruled]   " + c.Remark
	case domain.Unruled:
		return "[unruled] " + c.Remark
	default:
		msg := "unknown error"
		if e, ok := it.Err(); ok {
			msg = e.Message()
		}
		return fmt.Sprintf("[error]   %s - (%s)", msg, domain.Preview(it.OriginalLink, previewLen))
	}
}
