// Command ckaccdemo walks through the end-to-end accumulator lifecycle
// (spec.md §8): cast a few elements, replay the update stream into a
// prover, prove and verify membership, then tear the set back down.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/takakv/ckacc/accumulator"
	"github.com/takakv/ckacc/config"
	"github.com/takakv/ckacc/group"
	"github.com/takakv/ckacc/hashfn"
	"github.com/takakv/ckacc/log"
	"github.com/takakv/ckacc/metrics"
	"github.com/takakv/ckacc/prover"
)

func resolveGroup(name string) (group.Group, error) {
	switch name {
	case "secp256k1":
		return group.SecP256k1(), nil
	case "p256":
		return group.P256(), nil
	case "p384":
		return group.P384(), nil
	case "ristretto255":
		return group.Ristretto255(), nil
	case "modp3072":
		return group.NewModPGroup(
			"RFC3526ModPGroup3072",
			`FFFFFFFF FFFFFFFF C90FDAA2 2168C234 C4C6628B 80DC1CD1
			29024E08 8A67CC74 020BBEA6 3B139B22 514A0879 8E3404DD
			EF9519B3 CD3A431B 302B0A6D F25F1437 4FE1356D 6D51C245
			E485B576 625E7EC6 F44C42E9 A637ED6B 0BFF5CB6 F406B7ED
			EE386BFB 5A899FA5 AE9F2411 7C4B1FE6 49286651 ECE45B3D
			C2007CB8 A163BF05 98DA4836 1C55D39A 69163FA8 FD24CF5F
			83655D23 DCA3AD96 1C62F356 208552BB 9ED52907 7096966D
			670C354E 4ABC9804 F1746C08 CA18217C 32905E46 2E36CE3B
			E39E772C 180E8603 9B2783A2 EC07A28F B5C55DF0 6F4C52C9
			DE2BCBF6 95581718 3995497C EA956AE5 15D22618 98FA0510
			15728E5A 8AAAC42D AD33170D 04507A33 A85521AB DF1CBA64
			ECFB8504 58DBEF0A 8AEA7157 5D060C7D B3970F85 A6E1E4C7
			ABF5AE8C DB0933D7 1E8C94E0 4A25619D CEE3D226 1AD2EE6B
			F12FFA06 D98A0864 D8760273 3EC86A64 521F2B18 177B200C
			BBE11757 7A615D6C 770988C0 BAD946E2 08E24FA0 74E5AB31
			43DB5BFC E0FD108E 4B82D120 A93AD2CA FFFFFFFF FFFFFFFF
			`, "2"), nil
	default:
		return nil, fmt.Errorf("unknown curve %q", name)
	}
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := log.New(parseLevel(cfg.LogLevel)).Module("ckaccdemo")

	grp, err := resolveGroup(cfg.Curve)
	if err != nil {
		return err
	}
	h, err := hashfn.Named(cfg.HashBackend)
	if err != nil {
		return err
	}

	counters := metrics.NewCounters()

	acc, err := accumulator.New(grp, h, nil)
	if err != nil {
		return err
	}
	acc.WithLogger(logger).WithMetrics(counters)

	p, err := prover.New(grp, h)
	if err != nil {
		return err
	}
	p.WithLogger(logger)

	elements := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	start := time.Now()

	var updates []witnessUpdate
	for _, d := range elements {
		u, err := acc.Add(d)
		if err != nil {
			return fmt.Errorf("add %q: %w", d, err)
		}
		if err := p.Update(u); err != nil {
			return fmt.Errorf("prover update for %q: %w", d, err)
		}
		updates = append(updates, witnessUpdate{d: d, ok: acc.Verify(u.Witness())})
	}

	logger.Info("cast complete", "elements", len(elements), "elapsed", time.Since(start))
	for _, u := range updates {
		logger.Info("post-add witness check", "element", string(u.d), "verifies", u.ok)
	}

	for _, d := range elements {
		w, err := p.Prove(d)
		if err != nil {
			return fmt.Errorf("prover prove %q: %w", d, err)
		}
		logger.Info("prover witness",
			"element", string(d),
			"accumulator_verify", acc.Verify(w),
			"prover_verify", p.Verify(w))
	}

	for i := len(elements) - 1; i >= 0; i-- {
		d := elements[i]
		w, err := acc.Prove(d)
		if err != nil {
			return fmt.Errorf("accumulator prove %q: %w", d, err)
		}
		upd, err := acc.Del(w)
		if err != nil {
			return fmt.Errorf("del %q: %w", d, err)
		}
		if err := p.Update(upd); err != nil {
			return fmt.Errorf("prover update for del %q: %w", d, err)
		}
		logger.Info("deleted", "element", string(d))
	}

	logger.Info("teardown complete", "cursor_empty", acc.I() == nil)
	return nil
}

type witnessUpdate struct {
	d  []byte
	ok bool
}

func parseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ckaccdemo:", err)
		os.Exit(1)
	}
}
