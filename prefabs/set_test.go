package prefabs

import "testing"

func TestLoadSet(t *testing.T) {
	set, err := LoadSet()
	if err != nil {
		t.Fatalf("LoadSet: %v", err)
	}

	if set.Coin.Value != 1 {
		t.Errorf("Coin.Value = %d, want 1", set.Coin.Value)
	}
	if set.Mystery.Drop != "coin" || set.Mystery.DropMin != 3 || set.Mystery.DropMax != 6 {
		t.Errorf("Mystery = %+v, want coin 3..6", set.Mystery)
	}
	if set.Bounce.Velocity != -200 {
		t.Errorf("Bounce.Velocity = %v, want -200", set.Bounce.Velocity)
	}
	if set.Cloud.Tempo != 30 || set.Cloud.DropEvery != 3 || set.Cloud.Script != "cloud.tengo" {
		t.Errorf("Cloud = %+v", set.Cloud)
	}
	if set.Mushroom.Tempo != 45 || set.Mushroom.Damage != 1 || set.Mushroom.Knockback != 100 {
		t.Errorf("Mushroom = %+v", set.Mushroom)
	}
	if set.Fireball.FallSpeed != 120 || set.Fireball.Damage != 3 {
		t.Errorf("Fireball = %+v", set.Fireball)
	}
	if set.BounceTempo != 35 {
		t.Errorf("BounceTempo = %v, want 35", set.BounceTempo)
	}
	if set.StompBounce != -100 {
		t.Errorf("StompBounce = %v, want -100", set.StompBounce)
	}
}

func TestApplyDefaultsFillsZeroSet(t *testing.T) {
	var set Set
	set.applyDefaults()

	if set.Coin.Value != 1 || set.Mystery.Drop != "coin" || set.BounceTempo != 35 {
		t.Fatalf("zero set not filled: %+v", set)
	}
}

func TestLoadScriptEmbedded(t *testing.T) {
	for _, name := range []string{"cloud.tengo", "scripts/cloud.tengo", "prefabs/scripts/cloud.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("LoadScript(%q) returned empty script", name)
		}
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"cloud.tengo", "scripts/cloud.tengo"},
		{"scripts/cloud.tengo", "scripts/cloud.tengo"},
		{"prefabs/scripts/cloud.tengo", "scripts/cloud.tengo"},
		{"prefabs/cloud.tengo", "scripts/cloud.tengo"},
	}
	for _, c := range cases {
		if got := cleanScriptPath(c.in); got != c.want {
			t.Errorf("cleanScriptPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
