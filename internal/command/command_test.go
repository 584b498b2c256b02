package command

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArguments(t *testing.T) {
	c := Parse(`open history:1 label:"a b \"c\"" url:gemini://h/a b?q`)
	require.Equal(t, "open", c.Verb())
	require.True(t, c.Is("open"))
	require.Equal(t, 1, c.ArgInt("history"))
	require.False(t, c.HasArg("redirect"))
	require.Equal(t, 0, c.ArgInt("redirect"))
	require.Equal(t, `a b "c"`, c.String("label"))
	require.Equal(t, "gemini://h/a b?q", c.Suffix("url"))
}

func TestURLSuffixDoesNotLeakArguments(t *testing.T) {
	c := Parse(Open("gemini://h/q history:1 redirect:1", false, false))
	require.False(t, c.HasArg("history"))
	require.False(t, c.HasArg("redirect"))
	require.Equal(t, 0, c.ArgInt("history"))
	require.Equal(t, "gemini://h/q history:1 redirect:1", c.Suffix("url"))

	c = Parse("open history:1 url:gemini://h/a url:b")
	require.Equal(t, 1, c.ArgInt("history"))
	require.Equal(t, "gemini://h/a url:b", c.Suffix("url"))
}

func TestParseBareVerb(t *testing.T) {
	c := Parse("  quit  ")
	require.Equal(t, "quit", c.Verb())
	require.Equal(t, "quit", c.Text())
	require.False(t, c.HasArg("arg"))
	require.Equal(t, "", Parse("").Verb())
}

func TestArgFloatAndCoord(t *testing.T) {
	c := Parse("restorewindow width:800 height:600 coord:-10 24")
	require.Equal(t, 800, c.ArgInt("width"))
	require.Equal(t, 600, c.ArgInt("height"))
	x, y := c.Coord()
	require.Equal(t, -10, x)
	require.Equal(t, 24, y)

	require.InDelta(t, 1.25, Parse("uiscale arg:1.250000").ArgFloat("arg"), 1e-9)
	require.Equal(t, 3, Parse("list.clicked arg:3").Arg())
}

func TestLabelMustBeWholeWord(t *testing.T) {
	c := Parse("open xurl:nope url:gemini://h/")
	require.Equal(t, "gemini://h/", c.Suffix("url"))
}

func TestQuoteRoundTrip(t *testing.T) {
	c := Parse("prompt.submit text:" + Quote("hello \"world\"\tx"))
	require.Equal(t, "hello \"world\"\tx", c.String("text"))
}

func TestBusFIFO(t *testing.T) {
	b := NewBus()
	b.Post("a")
	b.Postf("b arg:%d", 2)
	b.Post("c")
	require.Equal(t, 3, b.Len())

	var got []string
	for {
		text, ok := b.Next()
		if !ok {
			break
		}
		got = append(got, text)
	}
	require.Equal(t, []string{"a", "b arg:2", "c"}, got)
	require.Equal(t, 0, b.Len())
}

func TestBusReadySignalsOnce(t *testing.T) {
	b := NewBus()
	b.Post("a")
	b.Post("b")
	select {
	case <-b.Ready():
	default:
		t.Fatal("expected ready signal")
	}
	select {
	case <-b.Ready():
		t.Fatal("ready should buffer a single signal")
	default:
	}
}

func TestBusCrossGoroutinePosting(t *testing.T) {
	b := NewBus()
	const producers, each = 8, 50
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				b.Post("tick")
			}
		}()
	}
	wg.Wait()
	require.Equal(t, producers*each, b.Len())
}

func TestBusClose(t *testing.T) {
	b := NewBus()
	b.Close()
	b.Close()
	b.Post("ignored")
	require.Equal(t, 0, b.Len())
	select {
	case <-b.Done():
	default:
		t.Fatal("done should be closed")
	}
}

func TestDispatchFirstMatchWins(t *testing.T) {
	var calls []string
	first := HandlerFunc(func(c Command) bool {
		calls = append(calls, "first")
		return c.Is("x")
	})
	second := HandlerFunc(func(c Command) bool {
		calls = append(calls, "second")
		return true
	})
	require.True(t, Dispatch(Parse("x"), first, nil, second))
	require.Equal(t, []string{"first"}, calls)

	calls = nil
	require.True(t, Dispatch(Parse("y"), first, second))
	require.Equal(t, []string{"first", "second"}, calls)

	require.False(t, Dispatch(Parse("z"), first))
}

func TestHandlerPostsAreQueuedNotRecursive(t *testing.T) {
	b := NewBus()
	depth := 0
	h := HandlerFunc(func(c Command) bool {
		depth++
		defer func() { depth-- }()
		require.Equal(t, 1, depth)
		if c.Is("a") {
			b.Post("b")
		}
		return true
	})
	b.Post("a")
	var order []string
	for {
		text, ok := b.Next()
		if !ok {
			break
		}
		order = append(order, text)
		Dispatch(Parse(text), h)
	}
	require.Equal(t, []string{"a", "b"}, order)
}

func TestOpenBuilder(t *testing.T) {
	require.Equal(t, "open url:gemini://h/", Open("gemini://h/", false, false))
	c := Parse(Open("gemini://h/a b", true, true))
	require.Equal(t, 1, c.ArgInt("history"))
	require.Equal(t, 1, c.ArgInt("redirect"))
	require.Equal(t, "gemini://h/a b", c.Suffix("url"))
}
