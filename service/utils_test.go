package service

import "testing"

func TestStringSet(t *testing.T) {
	ss := NewStringSet("b", "a", "b")
	if len(ss) != 2 || !ss.Exists("a") || ss.Exists("c") {
		t.Errorf("wrong set %v", ss)
	}
	ss.Push("c")
	ss.Push("a")
	if len(ss) != 3 || !ss.Exists("c") {
		t.Errorf("wrong set %v", ss)
	}
}
