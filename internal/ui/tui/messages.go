package tui

import "github.com/aalvaropc/nodesort/internal/domain"

type linksLoadedMsg struct {
	path  string
	items []domain.ClassifiedItem
	err   error
}

type linksWrittenMsg struct {
	path  string
	count int
	err   error
}
