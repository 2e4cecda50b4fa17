package datastreams

import "testing"

func TestFromHex_RoundTrip(t *testing.T) {
	const hex = "0x00016b4aa7e57ca7b68ae1bf45653f56b656fd3aa335ef7fae696b663f1b8472"
	id, err := FromHex(hex)
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if id[0] != 0x00 || id[1] != 0x01 {
		t.Fatalf("unexpected leading bytes: %02x %02x", id[0], id[1])
	}
	if id.Version() != 1 {
		t.Fatalf("Version() = %d, want 1", id.Version())
	}
	if id.ToHex() != hex {
		t.Fatalf("ToHex() = %q, want %q", id.ToHex(), hex)
	}
}

func TestFromHex_Errors(t *testing.T) {
	cases := []string{
		"00016b4aa7e57ca7b68ae1bf45653f56b656fd3aa335ef7fae696b663f1b8472",
		"0x00",
		"0xzz16b4aa7e57ca7b68ae1bf45653f56b656fd3aa335ef7fae696b663f1b8472",
	}
	for _, c := range cases {
		if _, err := FromHex(c); err == nil {
			t.Fatalf("FromHex(%q) expected error, got nil", c)
		}
	}
}

func TestID_JSONRoundTrip(t *testing.T) {
	const hex = "0x000296dcfc07501d70cbfad95cab72a392fe32d28bac71d5dd6d1f2dd3204f2c"
	id, err := FromHex(hex)
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	data, err := id.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var back ID
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if back != id {
		t.Fatalf("round trip mismatch: got %s want %s", back, id)
	}
	if back.Version() != 2 {
		t.Fatalf("Version() = %d, want 2", back.Version())
	}
}
