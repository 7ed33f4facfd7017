package notice

import (
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		param *string
		want  Fragment
	}{
		{name: "inactive", param: ptr("inactive"), want: Fragment{Visible: true, Message: InactiveMessage}},
		{name: "absent", param: nil, want: Fragment{}},
		{name: "empty", param: ptr(""), want: Fragment{}},
		{name: "other value", param: ptr("expired"), want: Fragment{}},
		{name: "case variant", param: ptr("Inactive"), want: Fragment{}},
		{name: "padded", param: ptr(" inactive"), want: Fragment{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.param))
		})
	}
}

func TestRenderIsStateless(t *testing.T) {
	assert.True(t, Render(ptr("inactive")).Visible)
	assert.False(t, Render(ptr("other")).Visible)
	assert.True(t, Render(ptr("inactive")).Visible)
}

func TestErrorParam(t *testing.T) {
	q, err := url.ParseQuery("error=inactive&error=other")
	require.NoError(t, err)
	require.NotNil(t, ErrorParam(q))
	assert.Equal(t, "inactive", *ErrorParam(q))

	q, err = url.ParseQuery("error=")
	require.NoError(t, err)
	require.NotNil(t, ErrorParam(q))
	assert.Equal(t, "", *ErrorParam(q))

	assert.Nil(t, ErrorParam(url.Values{"next": {"/home"}}))
}

func TestBannerFollowsNavigation(t *testing.T) {
	nav, err := NewNavigator("/login?error=inactive")
	require.NoError(t, err)

	b := NewBanner(nav)
	defer b.Close()
	assert.Equal(t, InactiveMessage, b.Fragment().Message)

	require.NoError(t, nav.Navigate("/login?error=expired"))
	assert.Equal(t, Fragment{}, b.Fragment())

	require.NoError(t, nav.Navigate("/login"))
	assert.False(t, b.Fragment().Visible)

	require.NoError(t, nav.Navigate("/login?error=inactive"))
	assert.True(t, b.Fragment().Visible)
}

func TestBannerCloseStopsUpdates(t *testing.T) {
	nav, err := NewNavigator("/login?error=inactive")
	require.NoError(t, err)

	b := NewBanner(nav)
	b.Close()

	require.NoError(t, nav.Navigate("/login"))
	assert.True(t, b.Fragment().Visible)
}

func TestNavigateInvalidURL(t *testing.T) {
	nav, err := NewNavigator("/login")
	require.NoError(t, err)

	assert.Error(t, nav.Navigate("http://[::1"))
	assert.Empty(t, nav.Query())
}

func TestNavigatorConcurrent(t *testing.T) {
	nav, err := NewNavigator("/login")
	require.NoError(t, err)
	b := NewBanner(nav)
	defer b.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = nav.Navigate("/login?error=inactive")
		}()
		go func() {
			defer wg.Done()
			_ = b.Fragment()
		}()
	}
	wg.Wait()

	assert.True(t, b.Fragment().Visible)
}

func TestOverlappingNavigationsKeepLatest(t *testing.T) {
	nav, err := NewNavigator("/login")
	require.NoError(t, err)

	b := NewBanner(nav)
	defer b.Close()

	stalled := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	nav.Subscribe(func(q url.Values) {
		if q.Get(QueryParam) == ErrorInactive {
			once.Do(func() {
				close(stalled)
				<-release
			})
		}
	})

	firstDone := make(chan error, 1)
	go func() { firstDone <- nav.Navigate("/login?error=inactive") }()
	<-stalled

	secondDone := make(chan error, 1)
	go func() { secondDone <- nav.Navigate("/login?error=other") }()

	select {
	case <-secondDone:
		t.Fatal("second navigation finished while the first was still notifying")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-firstDone)
	require.NoError(t, <-secondDone)

	assert.Equal(t, "other", nav.Query().Get(QueryParam))
	assert.Equal(t, RenderQuery(nav.Query()), b.Fragment())
	assert.False(t, b.Fragment().Visible)
}
