package logger_test

import (
	"bytes"
	"encoding/json"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/zeozeozeo/restdiv/logger"
)

var _ = Describe("Logger", func() {
	var (
		log       *logger.LoggerImpl
		logOutput *bytes.Buffer
	)

	decode := func() map[string]interface{} {
		var actual map[string]interface{}
		Expect(json.Unmarshal(logOutput.Bytes(), &actual)).To(Succeed())
		return actual
	}

	BeforeEach(func() {
		var err error
		log, err = logger.NewLogger("test-service", "debug")
		Expect(err).NotTo(HaveOccurred())
		logOutput = bytes.NewBufferString("")
		log.SetOutput(logOutput)
		log.SetJSON()
	})

	It("Should have `test-service` as service name", func() {
		log.Info("Testing")
		Expect(decode()["service"]).To(Equal("test-service"))
	})

	It("Should have info as log level", func() {
		log.Info("Testing")
		Expect(decode()["level"]).To(Equal("info"))
	})

	It("Should have warn as log level", func() {
		log.Warn("Testing")
		Expect(decode()["level"]).To(Equal("warning"))
	})

	It("Should have error as log level", func() {
		log.Error("Testing")
		Expect(decode()["level"]).To(Equal("error"))
	})

	It("Should drop trace entries at debug level", func() {
		log.Trace("Testing")
		Expect(logOutput.Len()).To(BeZero())
	})

	It("Should carry fields", func() {
		log.WithField("dividend", 120).WithFields(map[string]interface{}{"divisor": 10}).Info("Testing")
		actual := decode()
		Expect(actual["dividend"]).To(BeNumerically("==", 120))
		Expect(actual["divisor"]).To(BeNumerically("==", 10))
		Expect(actual["service"]).To(Equal("test-service"))
	})

	It("Should reject unknown levels", func() {
		_, err := logger.NewLogger("test-service", "loud")
		Expect(err).To(HaveOccurred())
	})
})
