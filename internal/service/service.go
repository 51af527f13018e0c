// Package service implements the core operations: card enrichment,
// collection persistence, session lifecycle, and timeline recording.
package service

import (
	"github.com/visualgenius/server/internal/adapter/imagesearch"
	"github.com/visualgenius/server/internal/adapter/llm"
	store "github.com/visualgenius/server/internal/repository"
	"github.com/visualgenius/server/policy"
)

type Service struct {
	store        store.Store
	ideas        llm.IdeaGenerator
	images       imagesearch.Searcher
	policyEngine *policy.Engine
}

func New(st store.Store, ideas llm.IdeaGenerator, images imagesearch.Searcher, policyEngine *policy.Engine) *Service {
	return &Service{
		store:        st,
		ideas:        ideas,
		images:       images,
		policyEngine: policyEngine,
	}
}
