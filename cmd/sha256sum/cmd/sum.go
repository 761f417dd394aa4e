package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tunaminer/sha256x"
)

func runSum(cmd *cobra.Command, log *logrus.Logger, opts *options, args []string) error {
	u, err := sha256x.ParseUnroll(opts.unroll)
	if err != nil {
		return err
	}
	log.WithField("unroll", u).Debug("selected compression variant")

	if len(args) == 0 {
		args = []string{"-"}
	}

	failed := false
	out := cmd.OutOrStdout()
	for _, name := range args {
		sum, err := sumFile(cmd.InOrStdin(), name, u, opts.double)
		if err != nil {
			log.WithFields(logrus.Fields{"file": name, "err": err}).Error("checksum failed")
			failed = true
			continue
		}
		fmt.Fprintf(out, "%s  %s\n", hex.EncodeToString(sum), name)
	}

	if failed {
		return errFailed
	}
	return nil
}

func sumFile(stdin io.Reader, name string, u sha256x.Unroll, double bool) ([]byte, error) {
	r := stdin
	if name != "-" {
		fh, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		r = fh
	}

	h, err := sha256x.NewUnrolled(u)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	sum := h.Sum(nil)
	if double {
		second, err := sha256x.SumUnrolled(u, sum)
		if err != nil {
			return nil, err
		}
		sum = second[:]
	}
	return sum, nil
}
