package ui

import "github.com/vynorlabs/vynornews/internal/model"

// feedLoadedMsg carries the result of an initial feed fetch. The generation
// token pairs it with the BeginInitial call that started it.
type feedLoadedMsg struct {
	gen   uint64
	items []model.NewsItem
	err   error
}

// feedMoreMsg carries the result of a pagination fetch.
type feedMoreMsg struct {
	gen   uint64
	items []model.NewsItem
	err   error
}
