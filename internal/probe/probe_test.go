package probe

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		latency float64
		want    Classification
	}{
		{"fast 200", 200, 100, Up},
		{"fast 299", 299, 100, Up},
		{"just under latency bound", 200, 499.999, Up},
		{"latency bound exactly", 200, 500, Down},
		{"over latency bound", 200, 600, Down},
		{"199 is not 2xx", 199, 50, Down},
		{"300 is not 2xx", 300, 50, Down},
		{"server error", 503, 50, Down},
		{"not found", 404, 50, Down},
		{"slow and failing", 500, 900, Down},
	}
	for _, c := range cases {
		if got := Classify(c.status, c.latency); got != c.want {
			t.Fatalf("%s: Classify(%d, %v)=%v want %v", c.name, c.status, c.latency, got, c.want)
		}
	}
}

func TestOutcome_Up(t *testing.T) {
	if (Outcome{Classification: Up}).Up() != true {
		t.Fatal("UP outcome should report Up()")
	}
	if (Outcome{Classification: Down}).Up() {
		t.Fatal("DOWN outcome should not report Up()")
	}
}
