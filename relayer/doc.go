// Package relayer implements the balance-aware proof submission
// workflow. It is responsible for:
//   - resolving the billing account to charge for a submission,
//   - ensuring the account holds enough prepaid balance, topping it up
//     when it does not,
//   - relaying the proof payload to the verification network,
//   - looking up the status of previously submitted verification jobs.
package relayer
