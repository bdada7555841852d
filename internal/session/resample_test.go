package session

import "testing"

func TestLinearResamplerDownsamples(t *testing.T) {
	r := newLinearResampler(88200, 44100, 1)
	in := []int16{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}
	got := r.process(in)
	want := []int16{0, 20, 40, 60, 80}
	if len(got) != len(want) {
		t.Fatalf("process() returned %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("process()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestLinearResamplerUpsamples(t *testing.T) {
	r := newLinearResampler(22050, 44100, 1)
	got := r.process([]int16{0, 10, 20, 30})
	want := []int16{0, 5, 10, 15, 20, 25}
	if len(got) != len(want) {
		t.Fatalf("process() returned %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("process()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestLinearResamplerKeepsChannelsSeparate(t *testing.T) {
	r := newLinearResampler(88200, 44100, 2)
	in := []int16{0, 1000, 10, 1000, 20, 1000, 30, 1000, 40, 1000, 50, 1000}
	got := r.process(in)
	want := []int16{0, 1000, 20, 1000, 40, 1000}
	if len(got) != len(want) {
		t.Fatalf("process() returned %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("process()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

// Resampling in chunks must match resampling the concatenated stream.
func TestLinearResamplerContinuityAcrossChunks(t *testing.T) {
	stream := make([]int16, 40)
	for i := range stream {
		stream[i] = int16(i * 7)
	}

	whole := newLinearResampler(48000, 44100, 1).process(stream)

	split := newLinearResampler(48000, 44100, 1)
	var got []int16
	got = append(got, split.process(stream[:13])...)
	got = append(got, split.process(stream[13:29])...)
	got = append(got, split.process(stream[29:])...)

	if len(got) != len(whole) {
		t.Fatalf("chunked output has %d samples, whole has %d", len(got), len(whole))
	}
	for i := range whole {
		if got[i] != whole[i] {
			t.Fatalf("chunked[%d] = %d, whole = %d", i, got[i], whole[i])
		}
	}
}

func TestLinearResamplerUnityRatePassthrough(t *testing.T) {
	r := newLinearResampler(44100, 44100, 1)
	var got []int16
	got = append(got, r.process([]int16{3, 6, 9})...)
	got = append(got, r.process([]int16{12, 15})...)
	want := []int16{3, 6, 9, 12}
	if len(got) != len(want) {
		t.Fatalf("process() returned %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("process()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
