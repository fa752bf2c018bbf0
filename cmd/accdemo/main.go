package main

import (
	"flag"
	"os"

	accumulator "accumulator-crypto/accumulator/bls12381"
	"accumulator-crypto/config"
	"accumulator-crypto/logging"
	"accumulator-crypto/types/srs"
)

var logger = logging.GetLogger()

func main() {
	configPath := flag.String("config", "", "path to config.yaml; defaults apply if empty")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.NewConfig(*configPath)
		if err != nil {
			logger.Error("read config failed: ", err)
			os.Exit(1)
		}
		cfg = loaded
		logging.Configure(cfg.Log)
		logger = logging.GetLogger()
	}

	logger.WithField("degree", cfg.Setup.Degree).Info("generating trusted setup powers")
	setup, err := srs.FromConfig(cfg.Setup)
	if err != nil {
		logger.Error("trusted setup failed: ", err)
		os.Exit(1)
	}
	if err := srs.Verify(setup); err != nil {
		logger.Error("setup well-formedness check failed: ", err)
		os.Exit(1)
	}
	logger.Info("setup verified")

	accA := accumulator.New(setup, accumulator.GroupG1)
	accB := accumulator.New(setup, accumulator.GroupG1)
	for _, x := range []int64{1, 3, 5, 7, 9} {
		accA.Add(x)
	}
	for _, x := range []int64{2, 3, 5, 8, 9} {
		accB.Add(x)
	}
	logger.WithField("A", accA.Elements()).WithField("B", accB.Elements()).Info("accumulators populated")

	addProof := accA.Add(10)
	logger.WithField("verifies", accumulator.VerifyUpdateProof(addProof, setup)).Info("added 10 to A")
	delProof := accA.Delete(7)
	logger.WithField("verifies", accumulator.VerifyUpdateProof(delProof, setup)).Info("deleted 7 from A")

	member := accA.GenerateMembershipProof(5)
	logger.WithField("verifies", accumulator.VerifyMembershipProof(accA.Digest(), 5, member, setup)).Info("membership of 5 in A")
	absent := accA.GenerateMembershipProof(6)
	logger.WithField("is_member", absent.IsMember).Info("membership of 6 in A")

	proof := accumulator.GenerateIntersectionProof(accA, accB, setup)
	ok := accumulator.VerifyIntersectionProof(accA.Digest(), accB.Digest(), proof, setup)
	logger.WithField("verifies", ok).WithField("proof_bytes", len(proof.ToBytes())).Info("intersection proof for A and B")
	if !ok {
		os.Exit(1)
	}
}
