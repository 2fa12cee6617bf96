package site

import (
	"context"
	"testing"
	"time"

	"github.com/LouYuanbo1/directorycrawler/internal/infra/browser"
	"github.com/LouYuanbo1/directorycrawler/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func navTestDescriptor() *Descriptor {
	return &Descriptor{
		Site:    "testsite",
		Network: "TestNet",
		BaseURL: "https://example.com/find-care",
		Steps:   []StepKind{StepGuestGate, StepLocation, StepSpecialty, StepRadius},
		SpecialtyVocab: map[string]string{
			"mental_health": "Mental Health",
			"psychiatry":    "Psychiatrist",
		},
		DefaultSpecialtyTerm: "Mental Health",
		Selectors: SelectorSet{
			PageReady:       ".home",
			GuestButton:     "#guest",
			PostGuestMarker: "#loc",
			LocationInput:   "#loc",
			SpecialtyInput:  "#spec",
			RadiusControl:   "#radius",
			RadiusOption:    "#radius-%d",
			ResultsReady:    ".cards",
			NoResults:       ".none",
			Card:            ".card",
		},
	}
}

func navCriteria() *param.SearchCriteria {
	sc := &param.SearchCriteria{ZipCode: "62704", Radius: 25, Specialty: "psychiatry"}
	sc.Normalize()
	return sc
}

func TestNavigatorHappyPath(t *testing.T) {
	session := &fakeSession{}
	nav := InitNavigator(session, navTestDescriptor(), time.Second, 0)

	outcome, err := nav.Run(context.Background(), navCriteria())
	require.NoError(t, err)
	assert.Equal(t, OutcomeReady, outcome)

	assert.Equal(t, []string{"https://example.com/find-care"}, session.navigated)
	assert.Contains(t, session.clicked, "#guest")
	assert.Contains(t, session.clicked, "#radius-25")
	assert.Equal(t, "62704", session.typed["#loc"])
	assert.Equal(t, "Psychiatrist", session.typed["#spec"])
}

func TestNavigatorMandatoryStepFailure(t *testing.T) {
	session := &fakeSession{
		failClickable: map[string]bool{"#loc": true},
	}
	nav := InitNavigator(session, navTestDescriptor(), time.Second, 0)

	_, err := nav.Run(context.Background(), navCriteria())
	require.Error(t, err)

	var navErr *NavigationError
	require.ErrorAs(t, err, &navErr)
	assert.Equal(t, StepLocation, navErr.Step)
	assert.Equal(t, "testsite", navErr.Site)
	//必经步骤失败后不再执行后续步骤
	assert.NotContains(t, session.clicked, "#radius-25")
}

func TestNavigatorRadiusFailureContinues(t *testing.T) {
	session := &fakeSession{
		failClickable: map[string]bool{"#radius": true},
	}
	nav := InitNavigator(session, navTestDescriptor(), time.Second, 0)

	outcome, err := nav.Run(context.Background(), navCriteria())
	require.NoError(t, err)
	assert.Equal(t, OutcomeReady, outcome)
}

func TestNavigatorNoRadiusControl(t *testing.T) {
	desc := navTestDescriptor()
	desc.Selectors.RadiusControl = ""
	session := &fakeSession{}
	nav := InitNavigator(session, desc, time.Second, 0)

	outcome, err := nav.Run(context.Background(), navCriteria())
	require.NoError(t, err)
	assert.Equal(t, OutcomeReady, outcome)
}

func TestNavigatorNoResultsOutcome(t *testing.T) {
	session := &fakeSession{
		lists: map[string][]browser.Element{
			".none": {&fakeElement{text: "No results found"}},
		},
	}
	nav := InitNavigator(session, navTestDescriptor(), time.Second, 0)

	outcome, err := nav.Run(context.Background(), navCriteria())
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoResults, outcome)
}

func TestNavigatorUnmappedSpecialtyFallsBack(t *testing.T) {
	session := &fakeSession{}
	nav := InitNavigator(session, navTestDescriptor(), time.Second, 0)

	criteria := &param.SearchCriteria{ZipCode: "62704", Radius: 25, Specialty: "dermatology"}
	_, err := nav.Run(context.Background(), criteria)
	require.NoError(t, err)
	assert.Equal(t, "Mental Health", session.typed["#spec"])
}

func TestNavigatorCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := &fakeSession{}
	nav := InitNavigator(session, navTestDescriptor(), time.Second, 0)

	_, err := nav.Run(ctx, navCriteria())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNavigatorResultsNeverReady(t *testing.T) {
	session := &fakeSession{
		failPresent: map[string]bool{".cards": true},
	}
	nav := InitNavigator(session, navTestDescriptor(), time.Second, 0)

	_, err := nav.Run(context.Background(), navCriteria())
	var navErr *NavigationError
	require.ErrorAs(t, err, &navErr)
	assert.Equal(t, StepResults, navErr.Step)
}
